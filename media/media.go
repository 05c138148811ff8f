// Package media defines the domain models shared by the catalog, resource
// and drive surfaces of the client.
package media

import (
	"fmt"

	"github.com/wangjh9712/fullbr115/constant"
)

// Media type discriminators as the server spells them.
const (
	TypeMovie = "movie"
	TypeTV    = "tv"
)

// Genre is a TMDB genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person is a cast or crew credit.
type Person struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// Meta is the list-level projection of a movie or show.
type Meta struct {
	TMDBID        int     `json:"tmdb_id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Type          string  `json:"media_type"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	Overview      string  `json:"overview"`
	VoteAverage   float64 `json:"vote_average"`
	GenreIDs      []int   `json:"genre_ids"`
}

func (m *Meta) String() string {
	return m.Title
}

// Year extracts the release year, empty when the date is unknown.
func (m *Meta) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// SiteURL returns the public TMDB page for this title.
func (m *Meta) SiteURL() string {
	return fmt.Sprintf("%s/%s/%d", constant.TMDBBase, m.Type, m.TMDBID)
}

// Detail is the full projection used by the details view. For shows it
// carries the season structure the coverage classifier consumes.
type Detail struct {
	Meta
	Genres          []Genre  `json:"genres"`
	Tagline         string   `json:"tagline"`
	Status          string   `json:"status"`
	Directors       []Person `json:"directors"`
	Cast            []Person `json:"cast"`
	Recommendations []Meta   `json:"recommendations"`
	Similar         []Meta   `json:"similar"`
	Seasons         []Season `json:"seasons"`
}

// SearchResult is one page of catalog search or discovery output.
type SearchResult struct {
	TotalResults int    `json:"total_results"`
	Page         int    `json:"page"`
	Results      []Meta `json:"results"`
}
