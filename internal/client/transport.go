package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/bzweiacker/showcatalog/internal/apperrors"
	"github.com/bzweiacker/showcatalog/internal/metrics"
)

// Fetch performs a single GET against rawURL and returns the response body.
// Malformed URLs fail fast with ErrInvalidURL before any network call.
// Responses are classified: 2xx yields the body bytes, 401/403 yields
// ErrUnauthorized, 404 yields ErrNotFound, any other status yields
// ErrRequestFailed, and a transport-level failure yields ErrNetwork.
// There are no retries; the caller owns retry policy.
func (c *client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, apperrors.NewInvalidURLError(rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.NewInvalidURLError(rawURL)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apperrors.NewNetworkError(err)
		}
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.NewUnauthorizedError(resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.NewNotFoundError("resource", rawURL)
	default:
		return nil, apperrors.NewRequestFailedError(resp.StatusCode)
	}
}

// fetchEndpoint wraps Fetch with a per-endpoint request counter.
func (c *client) fetchEndpoint(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	body, err := c.Fetch(ctx, rawURL)
	metrics.APIRequestsTotal.WithLabelValues(endpoint, outcomeLabel(err)).Inc()
	return body, err
}

// outcomeLabel maps a fetch error to its metric label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, &apperrors.ErrInvalidURL{}):
		return "invalid_url"
	case errors.Is(err, &apperrors.ErrUnauthorized{}):
		return "unauthorized"
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return "not_found"
	case errors.Is(err, &apperrors.ErrRequestFailed{}):
		return "request_failed"
	case errors.Is(err, &apperrors.ErrNetwork{}):
		return "network"
	default:
		return "error"
	}
}
