package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/bzweiacker/showcatalog/internal/apperrors"
	"github.com/bzweiacker/showcatalog/internal/config"
	"github.com/bzweiacker/showcatalog/internal/models"
)

// Show fetches and decodes a single show record from GET /shows/{id}.
func (c *client) Show(ctx context.Context, id int) (*models.Show, error) {
	endpoint := fmt.Sprintf("%s/shows/%d", c.baseURL, id)

	body, err := c.fetchEndpoint(ctx, "show", endpoint)
	if err != nil {
		if errors.Is(err, &apperrors.ErrNotFound{}) {
			return nil, apperrors.NewNotFoundError("show", id)
		}
		return nil, err
	}

	show, err := models.DecodeShow(body)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Int("showID", id).Msg("Failed to decode show payload")
		return nil, err
	}
	return show, nil
}

// ShowImages fetches and decodes the artwork list from GET /shows/{id}/images.
func (c *client) ShowImages(ctx context.Context, id int) ([]models.ShowImage, error) {
	endpoint := fmt.Sprintf("%s/shows/%d/images", c.baseURL, id)

	body, err := c.fetchEndpoint(ctx, "show_images", endpoint)
	if err != nil {
		if errors.Is(err, &apperrors.ErrNotFound{}) {
			return nil, apperrors.NewNotFoundError("show images", id)
		}
		return nil, err
	}

	images, err := models.DecodeShowImages(body)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Int("showID", id).Msg("Failed to decode image list payload")
		return nil, err
	}
	return images, nil
}

// SearchShows runs GET /search/shows?q={query} and decodes the scored results.
// The query is escaped before being placed in the URL.
func (c *client) SearchShows(ctx context.Context, query string) ([]models.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/search/shows?q=%s", c.baseURL, url.QueryEscape(query))

	body, err := c.fetchEndpoint(ctx, "search", endpoint)
	if err != nil {
		return nil, err
	}

	results, err := models.DecodeSearchResults(body)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("query", query).Msg("Failed to decode search payload")
		return nil, err
	}
	return results, nil
}
