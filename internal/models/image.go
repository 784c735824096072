package models

// Image type tags used by the catalog API.
const (
	ImageTypePoster     = "poster"
	ImageTypeBackground = "background"
)

// ShowImage is one artwork entry from the show's image list endpoint.
type ShowImage struct {
	ID          int              `json:"id"`
	Type        string           `json:"type"`
	Main        bool             `json:"main"`
	Resolutions ImageResolutions `json:"resolutions"`
}

// ImageResolutions holds the resolution variants of an artwork entry.
// The original variant is always present; medium is optional.
type ImageResolutions struct {
	Original ImageVariant  `json:"original"`
	Medium   *ImageVariant `json:"medium,omitempty"`
}

// ImageVariant is a single resolution of an artwork entry.
type ImageVariant struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
