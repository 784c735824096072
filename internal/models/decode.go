package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bzweiacker/showcatalog/internal/apperrors"
)

var errMissingID = errors.New("missing required field \"id\"")

// DecodeShow parses a show JSON payload. Unknown fields are ignored for
// forward compatibility; the integer ID is the only required field. Any
// failure collapses to ErrDecoding.
func DecodeShow(data []byte) (*Show, error) {
	var probe struct {
		ID *int `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, apperrors.NewDecodingError("show", err)
	}
	if probe.ID == nil {
		return nil, apperrors.NewDecodingError("show", errMissingID)
	}

	var show Show
	if err := json.Unmarshal(data, &show); err != nil {
		return nil, apperrors.NewDecodingError("show", err)
	}
	return &show, nil
}

// DecodeShowImages parses the image list payload for a show. Each entry
// must carry an ID, a type tag, and an original-resolution URL.
func DecodeShowImages(data []byte) ([]ShowImage, error) {
	var probes []struct {
		ID   *int    `json:"id"`
		Type *string `json:"type"`
		Res  struct {
			Original *struct {
				URL *string `json:"url"`
			} `json:"original"`
		} `json:"resolutions"`
	}
	if err := json.Unmarshal(data, &probes); err != nil {
		return nil, apperrors.NewDecodingError("image list", err)
	}
	for i, p := range probes {
		switch {
		case p.ID == nil:
			return nil, apperrors.NewDecodingError("image list", fmt.Errorf("entry %d: %w", i, errMissingID))
		case p.Type == nil:
			return nil, apperrors.NewDecodingError("image list", fmt.Errorf("entry %d: missing required field \"type\"", i))
		case p.Res.Original == nil || p.Res.Original.URL == nil:
			return nil, apperrors.NewDecodingError("image list", fmt.Errorf("entry %d: missing original resolution URL", i))
		}
	}

	var images []ShowImage
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, apperrors.NewDecodingError("image list", err)
	}
	return images, nil
}

// DecodeSearchResults parses the search endpoint payload: an array of
// score/show pairs. Every embedded show must carry its ID.
func DecodeSearchResults(data []byte) ([]SearchResult, error) {
	var probes []struct {
		Show struct {
			ID *int `json:"id"`
		} `json:"show"`
	}
	if err := json.Unmarshal(data, &probes); err != nil {
		return nil, apperrors.NewDecodingError("search results", err)
	}
	for i, p := range probes {
		if p.Show.ID == nil {
			return nil, apperrors.NewDecodingError("search results", fmt.Errorf("result %d: %w", i, errMissingID))
		}
	}

	var results []SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, apperrors.NewDecodingError("search results", err)
	}
	return results, nil
}
