package client

import (
	"context"
	"net/http"
	"time"

	"github.com/bzweiacker/showcatalog/internal/config"
	"github.com/bzweiacker/showcatalog/internal/models"
)

// Client defines the interface for querying the catalog API.
type Client interface {
	// Show fetches and decodes a single show record.
	Show(ctx context.Context, id int) (*models.Show, error)

	// ShowImages fetches and decodes the artwork list of a show.
	ShowImages(ctx context.Context, id int) ([]models.ShowImage, error)

	// SearchShows runs a full-text show search and decodes the scored results.
	SearchShows(ctx context.Context, query string) ([]models.SearchResult, error)

	// Fetch performs a single GET against an absolute URL and returns the
	// raw body bytes. Used by the image loader, which does its own decoding.
	Fetch(ctx context.Context, rawURL string) ([]byte, error)

	// Close releases idle connections held by the transport.
	Close()
}

// client implements the Client interface.
type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new catalog API client from config. The transport is
// cloned from http.DefaultTransport to preserve its connection pooling and
// HTTP/2 settings, then wrapped with transparent response decompression.
func NewClient(cfg *config.Config) Client {
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newDecompressionTransport(baseTransport),
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// Close releases idle connections held by the transport.
func (c *client) Close() {
	c.httpClient.CloseIdleConnections()
}
