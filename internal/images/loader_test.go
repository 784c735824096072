package images

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
)

// countingFetcher serves a fixed payload and counts how often it is asked.
type countingFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *countingFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

// mapCache is a minimal in-memory Cache for tests.
type mapCache struct {
	entries map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(key string) ([]byte, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *mapCache) Set(key string, value []byte) {
	c.entries[key] = value
}

func (c *mapCache) Contains(key string) bool {
	_, ok := c.entries[key]
	return ok
}

func (c *mapCache) Len() int { return len(c.entries) }

func (c *mapCache) Close() error { return nil }

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoader_Load_EmptyURL(t *testing.T) {
	fetcher := &countingFetcher{}
	l := NewLoader(fetcher, newMapCache())

	img := l.Load(context.Background(), "")
	if img != l.Placeholder() {
		t.Error("Expected placeholder for empty URL")
	}
	if fetcher.calls != 0 {
		t.Errorf("Expected no fetch for empty URL, got %d calls", fetcher.calls)
	}
}

func TestLoader_Load_MalformedURL(t *testing.T) {
	fetcher := &countingFetcher{}
	l := NewLoader(fetcher, newMapCache())

	for _, rawURL := range []string{"not a url", "/relative/poster.jpg", "://broken"} {
		img := l.Load(context.Background(), rawURL)
		if img != l.Placeholder() {
			t.Errorf("URL %q: expected placeholder", rawURL)
		}
	}
	if fetcher.calls != 0 {
		t.Errorf("Expected no fetch for malformed URLs, got %d calls", fetcher.calls)
	}
}

func TestLoader_Load_FetchesAndCaches(t *testing.T) {
	fetcher := &countingFetcher{data: pngBytes(t)}
	store := newMapCache()
	l := NewLoader(fetcher, store)

	const artURL = "https://example.com/poster.png"

	img := l.Load(context.Background(), artURL)
	if img == l.Placeholder() {
		t.Fatal("Expected decoded image, got placeholder")
	}
	if got := img.Bounds(); got.Dx() != 2 || got.Dy() != 3 {
		t.Errorf("Unexpected bounds %v", got)
	}
	if fetcher.calls != 1 {
		t.Fatalf("Expected 1 fetch, got %d", fetcher.calls)
	}
	if !store.Contains(artURL) {
		t.Fatal("Expected downloaded bytes to be cached")
	}

	// Second load must come from the cache, not the network.
	img = l.Load(context.Background(), artURL)
	if img == l.Placeholder() {
		t.Fatal("Expected decoded image on cache hit, got placeholder")
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected cache hit to skip fetching, got %d calls", fetcher.calls)
	}
}

func TestLoader_Load_FetchFailure(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("connection refused")}
	store := newMapCache()
	l := NewLoader(fetcher, store)

	img := l.Load(context.Background(), "https://example.com/poster.png")
	if img != l.Placeholder() {
		t.Error("Expected placeholder on fetch failure")
	}
	if store.Len() != 0 {
		t.Error("Expected nothing cached after fetch failure")
	}
}

func TestLoader_Load_UndecodableBytes(t *testing.T) {
	fetcher := &countingFetcher{data: []byte("<html>503 Service Unavailable</html>")}
	store := newMapCache()
	l := NewLoader(fetcher, store)

	img := l.Load(context.Background(), "https://example.com/poster.png")
	if img != l.Placeholder() {
		t.Error("Expected placeholder for undecodable bytes")
	}
	if store.Len() != 0 {
		t.Error("Expected undecodable bytes to not be cached")
	}
}

func TestLoader_Load_StaleCacheEntryRefetched(t *testing.T) {
	fetcher := &countingFetcher{data: pngBytes(t)}
	store := newMapCache()
	l := NewLoader(fetcher, store)

	const artURL = "https://example.com/poster.png"
	store.Set(artURL, []byte("corrupted"))

	img := l.Load(context.Background(), artURL)
	if img == l.Placeholder() {
		t.Fatal("Expected refetched image, got placeholder")
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected 1 refetch for corrupted cache entry, got %d", fetcher.calls)
	}
	if data, _ := store.Get(artURL); bytes.Equal(data, []byte("corrupted")) {
		t.Error("Expected corrupted cache entry to be replaced")
	}
}

func TestLoader_Placeholder(t *testing.T) {
	l := NewLoader(&countingFetcher{}, newMapCache())

	p := l.Placeholder()
	if p == nil {
		t.Fatal("Expected a placeholder image")
	}
	if b := p.Bounds(); b.Dx() != 210 || b.Dy() != 295 {
		t.Errorf("Unexpected placeholder bounds %v", b)
	}
}
