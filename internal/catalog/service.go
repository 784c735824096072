package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bzweiacker/showcatalog/internal/apperrors"
	"github.com/bzweiacker/showcatalog/internal/client"
	"github.com/bzweiacker/showcatalog/internal/config"
	"github.com/bzweiacker/showcatalog/internal/models"
)

// Service resolves the configured home-screen categories, single shows,
// background artwork, and searches against the catalog API. All collaborators
// are injected at construction; the service holds no global state.
type Service struct {
	client     client.Client
	categories []models.Category
}

// NewService creates a catalog service for the given client and the static
// category configuration.
func NewService(c client.Client, categories []models.Category) *Service {
	return &Service{
		client:     c,
		categories: categories,
	}
}

// CategorizedShows fetches every configured category for the home screen.
// Categories are resolved sequentially, in configured order; the shows
// inside each category are fetched concurrently. Cancelling the context
// stops the walk between categories and aborts in-flight requests.
func (s *Service) CategorizedShows(ctx context.Context) (models.CategorizedShows, error) {
	logger := config.GetLogger()
	logger.Info().Int("categories", len(s.categories)).Msg("Fetching categorized shows")

	result := make(models.CategorizedShows, 0, len(s.categories))
	for _, category := range s.categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		shows, err := s.fetchCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CategoryShows{Name: category.Name, Shows: shows})
	}
	return result, nil
}

// fetchCategory fans out one fetch-and-decode task per show ID and joins
// them. Each task writes into its own index-tagged slot, so the output
// order always equals the category's ID order no matter which request
// finishes first. A failed task drops only its own slot; when every task
// fails, the joined error is surfaced instead of an empty category, so
// callers can tell a broken fetch layer from an empty result.
func (s *Service) fetchCategory(ctx context.Context, category models.Category) ([]models.Show, error) {
	logger := config.GetLogger()

	slots := make([]*models.Show, len(category.ShowIDs))
	taskErrs := make([]error, len(category.ShowIDs))

	var wg sync.WaitGroup
	wg.Add(len(category.ShowIDs))

	for i, id := range category.ShowIDs {
		go func(i, id int) {
			defer wg.Done()

			show, err := s.client.Show(ctx, id)
			if err != nil {
				logger.Warn().Err(err).Int("showID", id).Str("category", category.Name).Msg("Failed to fetch show, dropping from category")
				taskErrs[i] = err
				return
			}
			slots[i] = show
		}(i, id)
	}

	wg.Wait()

	shows := make([]models.Show, 0, len(slots))
	var failures []error
	for i, slot := range slots {
		if slot != nil {
			shows = append(shows, *slot)
		} else if taskErrs[i] != nil {
			failures = append(failures, taskErrs[i])
		}
	}

	if len(shows) == 0 && len(failures) > 0 {
		return nil, fmt.Errorf("category %q: all shows failed: %w", category.Name, errors.Join(failures...))
	}
	if len(failures) > 0 {
		logger.Warn().Err(errors.Join(failures...)).Str("category", category.Name).Int("fetched", len(shows)).Int("failed", len(failures)).Msg("Partial success fetching category")
	}

	return shows, nil
}

// Show fetches a single show record.
func (s *Service) Show(ctx context.Context, id int) (*models.Show, error) {
	return s.client.Show(ctx, id)
}

// Search runs a full-text show search.
func (s *Service) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return s.client.SearchShows(ctx, query)
}

// BackgroundImageURL returns the detail-view backdrop URL for a show: the
// original-resolution variant of the first "background"-typed entry in the
// show's image list. First match wins, even when a later background entry
// exists. An empty image list yields ErrEmptyImages; a non-empty list with
// no background entry yields ErrNoBackgroundImage.
func (s *Service) BackgroundImageURL(ctx context.Context, id int) (string, error) {
	images, err := s.client.ShowImages(ctx, id)
	if err != nil {
		return "", err
	}

	if len(images) == 0 {
		return "", apperrors.NewEmptyImagesError(id)
	}

	for _, img := range images {
		if img.Type == models.ImageTypeBackground {
			return img.Resolutions.Original.URL, nil
		}
	}
	return "", apperrors.NewNoBackgroundImageError(id)
}
