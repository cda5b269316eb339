package catalog

import "fmt"

// Kind distinguishes the two catalog item kinds the upstream serves.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// ParseKind validates a kind path/query parameter.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMovie, KindTV:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid kind %q, must be %q or %q", s, KindMovie, KindTV)
	}
}

// SearchKind is the kind parameter accepted by search, which additionally
// allows a combined movie+tv search.
type SearchKind string

const (
	SearchMovie SearchKind = "movie"
	SearchTV    SearchKind = "tv"
	SearchMulti SearchKind = "multi"
)

// ParseSearchKind validates a search kind parameter.
func ParseSearchKind(s string) (SearchKind, error) {
	switch SearchKind(s) {
	case SearchMovie, SearchTV, SearchMulti:
		return SearchKind(s), nil
	default:
		return "", fmt.Errorf("invalid kind %q, must be movie, tv, or multi", s)
	}
}

// Item is one catalog entry as returned inside list responses. Movies carry
// title/release_date, shows carry name/first_air_date; everything else is
// shared. Paths are nullable upstream.
type Item struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
}

// DisplayTitle returns the movie title or show name, whichever is set.
func (i *Item) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// ReleasedOn returns the release date for movies or first air date for shows.
func (i *Item) ReleasedOn() string {
	if i.ReleaseDate != "" {
		return i.ReleaseDate
	}
	return i.FirstAirDate
}

// Page is the upstream list envelope shared by trending, popular, similar,
// search, and discover responses.
type Page struct {
	Page         int    `json:"page"`
	Results      []Item `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Genre is a catalog genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreList is the response of the genre listing call.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// CastMember is one cast credit on a details response.
type CastMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// CrewMember is one crew credit on a details response.
type CrewMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	ProfilePath *string `json:"profile_path"`
}

// Credits wraps the cast and crew arrays appended to details.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is one trailer/teaser entry appended to details.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList wraps the appended videos array.
type VideoList struct {
	Results []Video `json:"results"`
}

// Details is the full record of one catalog item, including the fields
// appended via credits and videos. Movie-only and show-only fields are
// optional and zero for the other kind.
type Details struct {
	Item

	Genres           []Genre    `json:"genres"`
	Status           string     `json:"status,omitempty"`
	Tagline          string     `json:"tagline,omitempty"`
	Runtime          int        `json:"runtime,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	Credits          *Credits   `json:"credits,omitempty"`
	Videos           *VideoList `json:"videos,omitempty"`
}

// Resolved is the tagged result of looking an ID up as a movie first and a
// show second.
type Resolved struct {
	Kind    Kind     `json:"kind"`
	Details *Details `json:"details"`
}

// DiscoverFilters are the optional filters of the discover call.
type DiscoverFilters struct {
	GenreID int64
	Year    int
	Page    int
}
