package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bzweiacker/showcatalog/internal/catalog"
	"github.com/bzweiacker/showcatalog/internal/models"
)

// renderShowsTable renders one category row worth of shows.
func renderShowsTable(shows []models.Show) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Rating", "Premiered", "Genres"})

	for _, show := range shows {
		rating := "-"
		if avg, ok := show.AverageRating(); ok {
			rating = fmt.Sprintf("%.1f", avg)
		}
		premiered := show.Premiered
		if premiered == "" {
			premiered = "-"
		}
		tw.AppendRow(table.Row{show.ID, show.Name, rating, premiered, strings.Join(show.Genres, ", ")})
	}

	return tw.Render()
}

// renderSearchTable renders scored search results, best match first as
// returned by the API.
func renderSearchTable(results []models.SearchResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Score", "ID", "Name", "Status"})

	for _, result := range results {
		status := result.Show.Status
		if status == "" {
			status = "-"
		}
		tw.AppendRow(table.Row{fmt.Sprintf("%.3f", result.Score), result.Show.ID, result.Show.Name, status})
	}

	return tw.Render()
}

// renderShowDetail renders the detail view for a single show.
func renderShowDetail(show *models.Show, backgroundURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (#%d)\n", show.Name, show.ID)
	if avg, ok := show.AverageRating(); ok {
		fmt.Fprintf(&b, "Rating: %.1f\n", avg)
	}
	if len(show.Genres) > 0 {
		fmt.Fprintf(&b, "Genres: %s\n", strings.Join(show.Genres, ", "))
	}
	if show.Network != nil && show.Network.Name != "" {
		fmt.Fprintf(&b, "Network: %s\n", show.Network.Name)
	}
	if summary := catalog.PlainSummary(show.Summary); summary != "" {
		fmt.Fprintf(&b, "\n%s\n", summary)
	}
	if backgroundURL != "" {
		fmt.Fprintf(&b, "\nBackdrop: %s\n", backgroundURL)
	}

	return b.String()
}
