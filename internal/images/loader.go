package images

import (
	"bytes"
	"context"
	"image"
	"net/url"

	// Codecs for the artwork formats the catalog serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/fallback"

	"github.com/bzweiacker/showcatalog/internal/cache"
	"github.com/bzweiacker/showcatalog/internal/config"
	"github.com/bzweiacker/showcatalog/internal/metrics"
)

// Fetcher fetches raw bytes from an absolute URL. Implemented by the
// catalog API client.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Loader turns artwork URLs into decoded images. Load is a total function:
// whatever goes wrong (absent URL, network failure, undecodable bytes) the
// caller gets the placeholder back, never an error. A missing poster must
// not block rendering a detail view.
type Loader struct {
	fetcher     Fetcher
	store       cache.Cache
	placeholder image.Image
}

// NewLoader creates a Loader backed by the given fetcher and cache.
func NewLoader(fetcher Fetcher, store cache.Cache) *Loader {
	return &Loader{
		fetcher:     fetcher,
		store:       store,
		placeholder: newPlaceholder(),
	}
}

// Placeholder returns the fallback image handed out when artwork cannot
// be obtained.
func (l *Loader) Placeholder() image.Image {
	return l.placeholder
}

// Load returns a displayable image for rawURL.
//
// An empty or malformed URL returns the placeholder immediately, without
// touching the cache or the network. Otherwise the cache is consulted
// first (key = URL string); on a miss the bytes are fetched, decoded,
// stored, and returned. The fetch-decode-store path runs under a fallback
// policy that degrades to the placeholder, so Load never fails.
func (l *Loader) Load(ctx context.Context, rawURL string) image.Image {
	if rawURL == "" {
		metrics.ImageLoadsTotal.WithLabelValues("placeholder").Inc()
		return l.placeholder
	}
	if parsed, err := url.Parse(rawURL); err != nil || !parsed.IsAbs() || parsed.Host == "" {
		metrics.ImageLoadsTotal.WithLabelValues("placeholder").Inc()
		return l.placeholder
	}

	if data, ok := l.store.Get(rawURL); ok {
		if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
			metrics.ImageLoadsTotal.WithLabelValues("cache").Inc()
			return img
		}
		// Cached bytes no longer decode; fall through and refetch.
	}

	img, _ := failsafe.With(fallback.NewWithResult[image.Image](l.placeholder)).Get(func() (image.Image, error) {
		return l.fetchAndDecode(ctx, rawURL)
	})

	if img == l.placeholder {
		metrics.ImageLoadsTotal.WithLabelValues("placeholder").Inc()
	} else {
		metrics.ImageLoadsTotal.WithLabelValues("network").Inc()
	}
	return img
}

// fetchAndDecode downloads the artwork, decodes it, and stores the encoded
// bytes in the cache keyed by URL.
func (l *Loader) fetchAndDecode(ctx context.Context, rawURL string) (image.Image, error) {
	logger := config.GetLogger()

	data, err := l.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		logger.Warn().Err(err).Str("url", rawURL).Msg("Image fetch failed, using placeholder")
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn().Err(err).Str("url", rawURL).Msg("Image decode failed, using placeholder")
		return nil, err
	}

	l.store.Set(rawURL, data)
	logger.Debug().Str("url", rawURL).Str("format", format).Int("size", len(data)).Msg("Cached downloaded image")
	return img, nil
}
