package models

// SearchResult pairs a relevance score with the matched show.
type SearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}
