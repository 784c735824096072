package models

// Show is a single TV series record from the catalog API. Only the
// server-assigned ID is guaranteed to be present; every other field is
// optional and left at its zero value when the API omits it. Shows are
// never mutated after decode.
type Show struct {
	ID             int        `json:"id"`
	URL            string     `json:"url,omitempty"`
	Name           string     `json:"name,omitempty"`
	Type           string     `json:"type,omitempty"`
	Language       string     `json:"language,omitempty"`
	Genres         []string   `json:"genres,omitempty"`
	Status         string     `json:"status,omitempty"`
	Runtime        *int       `json:"runtime,omitempty"`
	AverageRuntime *int       `json:"averageRuntime,omitempty"`
	Premiered      string     `json:"premiered,omitempty"`
	Ended          string     `json:"ended,omitempty"`
	OfficialSite   string     `json:"officialSite,omitempty"`
	Schedule       *Schedule  `json:"schedule,omitempty"`
	Rating         *Rating    `json:"rating,omitempty"`
	Weight         int        `json:"weight,omitempty"`
	Network        *Network   `json:"network,omitempty"`
	WebChannel     *Network   `json:"webChannel,omitempty"`
	Externals      *Externals `json:"externals,omitempty"`
	Image          *ShowArt   `json:"image,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	Updated        int64      `json:"updated,omitempty"`
	Links          *Links     `json:"_links,omitempty"`
}

// Schedule is the weekly airing slot of a show.
type Schedule struct {
	Time string   `json:"time,omitempty"`
	Days []string `json:"days,omitempty"`
}

// Rating holds the average user rating. Average is a pointer so an unrated
// show can be told apart from one rated 0.
type Rating struct {
	Average *float64 `json:"average"`
}

// Network describes a broadcast network or web channel.
type Network struct {
	ID           int      `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Country      *Country `json:"country,omitempty"`
	OfficialSite string   `json:"officialSite,omitempty"`
}

// Country is the network's country of origin.
type Country struct {
	Name     string `json:"name,omitempty"`
	Code     string `json:"code,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// Externals holds third-party identifiers for the show.
type Externals struct {
	TVRage  *int   `json:"tvrage,omitempty"`
	TheTVDB *int   `json:"thetvdb,omitempty"`
	IMDB    string `json:"imdb,omitempty"`
}

// ShowArt holds the medium and original poster URLs embedded in a show
// record, distinct from the full image list endpoint.
type ShowArt struct {
	Medium   string `json:"medium,omitempty"`
	Original string `json:"original,omitempty"`
}

// Links holds the HAL-style links attached to a show record.
type Links struct {
	Self            *Link `json:"self,omitempty"`
	PreviousEpisode *Link `json:"previousepisode,omitempty"`
}

// Link is a single HAL link.
type Link struct {
	Href string `json:"href,omitempty"`
	Name string `json:"name,omitempty"`
}

// AverageRating returns the show's average rating, or 0 and false when the
// show is unrated.
func (s *Show) AverageRating() (float64, bool) {
	if s.Rating == nil || s.Rating.Average == nil {
		return 0, false
	}
	return *s.Rating.Average, true
}

// PosterURL returns the medium poster URL embedded in the show record,
// or an empty string when no artwork is attached.
func (s *Show) PosterURL() string {
	if s.Image == nil {
		return ""
	}
	return s.Image.Medium
}
