package models

// Category is a curated, statically configured group of show IDs rendered
// as one row on the home screen. The ID order is the display order.
type Category struct {
	Name    string `json:"name" mapstructure:"name"`
	ShowIDs []int  `json:"show_ids" mapstructure:"show_ids"`
}

// CategoryShows is one resolved home-screen row: the category name and its
// shows in the same order as the category's ID list.
type CategoryShows struct {
	Name  string `json:"name"`
	Shows []Show `json:"shows"`
}

// CategorizedShows is the full home-screen aggregate, one entry per
// configured category, in configured order.
type CategorizedShows []CategoryShows
