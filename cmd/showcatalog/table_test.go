package main

import (
	"strings"
	"testing"

	"github.com/bzweiacker/showcatalog/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestRenderShowsTable(t *testing.T) {
	shows := []models.Show{
		{
			ID:        169,
			Name:      "Breaking Bad",
			Premiered: "2008-01-20",
			Genres:    []string{"Drama", "Crime", "Thriller"},
			Rating:    &models.Rating{Average: floatPtr(9.2)},
		},
		{
			ID:   41074,
			Name: "Unrated Show",
		},
	}

	out := renderShowsTable(shows)

	for _, want := range []string{"Breaking Bad", "169", "9.2", "2008-01-20", "Drama, Crime, Thriller", "Unrated Show"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderSearchTable(t *testing.T) {
	results := []models.SearchResult{
		{Score: 0.912, Show: models.Show{ID: 975, Name: "Batman", Status: "Ended"}},
		{Score: 0.5, Show: models.Show{ID: 481, Name: "Batwoman"}},
	}

	out := renderSearchTable(results)

	for _, want := range []string{"0.912", "975", "Batman", "Ended", "Batwoman"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderShowDetail(t *testing.T) {
	show := &models.Show{
		ID:      169,
		Name:    "Breaking Bad",
		Genres:  []string{"Drama", "Crime"},
		Network: &models.Network{Name: "AMC"},
		Rating:  &models.Rating{Average: floatPtr(9.2)},
		Summary: "<p><b>Breaking Bad</b> follows Walter White.</p>",
	}

	out := renderShowDetail(show, "https://example.com/backdrop.jpg")

	for _, want := range []string{
		"Breaking Bad (#169)",
		"Rating: 9.2",
		"Genres: Drama, Crime",
		"Network: AMC",
		"Breaking Bad follows Walter White.",
		"Backdrop: https://example.com/backdrop.jpg",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected detail view to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<p>") || strings.Contains(out, "<b>") {
		t.Errorf("Expected markup to be stripped from summary:\n%s", out)
	}
}

func TestRenderShowDetail_MinimalShow(t *testing.T) {
	show := &models.Show{ID: 1, Name: "Bare"}

	out := renderShowDetail(show, "")

	if !strings.Contains(out, "Bare (#1)") {
		t.Errorf("Expected header line, got:\n%s", out)
	}
	for _, absent := range []string{"Rating:", "Genres:", "Network:", "Backdrop:"} {
		if strings.Contains(out, absent) {
			t.Errorf("Expected %q to be omitted for a bare show:\n%s", absent, out)
		}
	}
}
