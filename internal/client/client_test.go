package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bzweiacker/showcatalog/internal/apperrors"
	"github.com/bzweiacker/showcatalog/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		BaseURL:       baseURL,
		ClientTimeout: "5s",
	})
}

func TestClient_Show(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/169" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 169, "name": "Breaking Bad", "rating": {"average": 9.2}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	show, err := c.Show(context.Background(), 169)
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if show.ID != 169 || show.Name != "Breaking Bad" {
		t.Errorf("Unexpected show: %+v", show)
	}
}

func TestClient_Show_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Show(context.Background(), 99999999)
	if err == nil {
		t.Fatal("Expected error for missing show")
	}
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	var notFound *apperrors.ErrNotFound
	if errors.As(err, &notFound) {
		if notFound.Resource != "show" {
			t.Errorf("Expected resource \"show\", got %q", notFound.Resource)
		}
		if notFound.ID != 99999999 {
			t.Errorf("Expected ID 99999999, got %v", notFound.ID)
		}
	}
}

func TestClient_Show_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := newTestClient(server.URL)
		_, err := c.Show(context.Background(), 1)
		server.Close()

		if !errors.Is(err, &apperrors.ErrUnauthorized{}) {
			t.Errorf("Status %d: expected ErrUnauthorized, got %v", status, err)
		}
	}
}

func TestClient_Show_RequestFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Show(context.Background(), 1)
	if !errors.Is(err, &apperrors.ErrRequestFailed{}) {
		t.Errorf("Expected ErrRequestFailed, got %v", err)
	}
}

func TestClient_Show_NetworkError(t *testing.T) {
	// A closed server guarantees a connection failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(server.URL)

	_, err := c.Show(context.Background(), 1)
	if !errors.Is(err, &apperrors.ErrNetwork{}) {
		t.Errorf("Expected ErrNetwork, got %v", err)
	}
}

func TestClient_Show_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "no id here"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Show(context.Background(), 1)
	if !errors.Is(err, &apperrors.ErrDecoding{}) {
		t.Errorf("Expected ErrDecoding, got %v", err)
	}
}

func TestClient_Fetch_InvalidURL(t *testing.T) {
	c := newTestClient("http://unused.invalid")

	for _, rawURL := range []string{"", "not a url", "/relative/path", "://missing-scheme"} {
		_, err := c.Fetch(context.Background(), rawURL)
		if !errors.Is(err, &apperrors.ErrInvalidURL{}) {
			t.Errorf("URL %q: expected ErrInvalidURL, got %v", rawURL, err)
		}
	}
}

func TestClient_Fetch_UserAgent(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := NewClient(&config.Config{BaseURL: server.URL, UserAgent: "catalog-test/1.0"})

	body, err := c.Fetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("Unexpected body %q", string(body))
	}
	if gotUserAgent != "catalog-test/1.0" {
		t.Errorf("Expected configured user agent, got %q", gotUserAgent)
	}
}

func TestClient_ShowImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/82/images" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[
			{"id": 1, "type": "poster", "main": true, "resolutions": {"original": {"url": "https://example.com/p.jpg"}}},
			{"id": 2, "type": "background", "main": false, "resolutions": {"original": {"url": "https://example.com/b.jpg"}}}
		]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	images, err := c.ShowImages(context.Background(), 82)
	if err != nil {
		t.Fatalf("ShowImages failed: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(images))
	}
	if images[1].Type != "background" {
		t.Errorf("Expected background type, got %q", images[1].Type)
	}
}

func TestClient_SearchShows(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/shows" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`[{"score": 0.9, "show": {"id": 975, "name": "Batman"}}]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	results, err := c.SearchShows(context.Background(), "batman & robin")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if gotQuery != "batman & robin" {
		t.Errorf("Expected escaped query to round-trip, got %q", gotQuery)
	}
	if len(results) != 1 || results[0].Show.Name != "Batman" {
		t.Errorf("Unexpected results: %+v", results)
	}
}

func TestClient_SearchShows_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	results, err := c.SearchShows(context.Background(), "zzzzzz")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
