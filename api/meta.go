package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/query"
)

// Genres returns the TMDB genre table for movies or shows, used to turn
// genre ids into names and to build discover filters.
func (c *Client) Genres(mediaType string) ([]media.Genre, error) {
	var out []media.Genre
	if err := c.get("/tmdb/genres/"+mediaType, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DiscoverOptions narrows a catalog discovery page. Zero values are
// omitted from the request so the server applies its own defaults.
type DiscoverOptions struct {
	Page         int
	SortBy       string
	WithGenres   string
	StartDate    string
	EndDate      string
	MinVote      float64
	MinVoteCount int
}

func (o DiscoverOptions) values() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.SortBy != "" {
		q.Set("sort_by", o.SortBy)
	}
	if o.WithGenres != "" {
		q.Set("with_genres", o.WithGenres)
	}
	if o.StartDate != "" {
		q.Set("start_date", o.StartDate)
	}
	if o.EndDate != "" {
		q.Set("end_date", o.EndDate)
	}
	if o.MinVote > 0 {
		q.Set("min_vote", strconv.FormatFloat(o.MinVote, 'f', -1, 64))
	}
	if o.MinVoteCount > 0 {
		q.Set("min_vote_count", strconv.Itoa(o.MinVoteCount))
	}
	return q
}

// Discover browses the catalog with the given ordering and filters.
func (c *Client) Discover(mediaType string, opts DiscoverOptions) (*media.SearchResult, error) {
	var out media.SearchResult
	if err := c.get("/tmdb/discover/"+mediaType, opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search finds titles by free text and feeds the query history so later
// invocations can suggest it back.
func (c *Client) Search(text string, page int) (*media.SearchResult, error) {
	_ = query.Remember(text, 1)

	q := url.Values{}
	q.Set("query", text)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var out media.SearchResult
	if err := c.get("/tmdb/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Details returns the full projection for one title, including the season
// structure for shows.
func (c *Client) Details(mediaType string, tmdbID int) (*media.Detail, error) {
	var out media.Detail
	path := fmt.Sprintf("/tmdb/details/%s/%d", mediaType, tmdbID)
	if err := c.get(path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SeasonDetails returns one season of a show with its episode list.
func (c *Client) SeasonDetails(tmdbID, season int) (*media.Season, error) {
	var out media.Season
	path := fmt.Sprintf("/tmdb/details/tv/%d/season/%d", tmdbID, season)
	if err := c.get(path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
