package media

import "fmt"

// Season is one broadcast season of a show. Episodes are populated only by
// the season detail endpoint.
type Season struct {
	ID           int       `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	PosterPath   string    `json:"poster_path"`
	EpisodeCount int       `json:"episode_count"`
	AirDate      string    `json:"air_date"`
	Episodes     []Episode `json:"episodes"`
}

// Label returns the short form pack season lists use, e.g. "S3".
func (s *Season) Label() string {
	return fmt.Sprintf("S%d", s.SeasonNumber)
}

func (s *Season) String() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Label()
}

// Episode is a single aired episode of a season.
type Episode struct {
	ID            int     `json:"id"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     string  `json:"still_path"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
}

// Code renders the canonical SxxEyy episode code.
func (e *Episode) Code() string {
	return fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.EpisodeNumber)
}
