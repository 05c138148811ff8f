package api

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/media"
)

// seasonFanout caps how many season listings are in flight at once.
const seasonFanout = 4

// Filters narrow a resource listing server-side.
type Filters struct {
	SourceType    string
	RequireZh     bool
	MinResolution string
}

// DefaultFilters assembles the configured baseline filters.
func DefaultFilters() Filters {
	return Filters{
		SourceType:    viper.GetString(key.ResourcesSourceType),
		RequireZh:     viper.GetBool(key.ResourcesRequireZh),
		MinResolution: viper.GetString(key.ResourcesMinResolution),
	}
}

// values encodes the filters. The season and episode routes do not accept
// a source type, so it is included only where asked for.
func (f Filters) values(withSource bool) url.Values {
	q := url.Values{}
	if withSource && f.SourceType != "" {
		q.Set("source_type", normalizeSourceType(f.SourceType))
	}
	if f.RequireZh {
		q.Set("require_zh", "true")
	}
	if f.MinResolution != "" {
		q.Set("min_resolution", f.MinResolution)
	}
	return q
}

// normalizeSourceType accepts the short "115" spelling used on flags and in
// the config and maps it to the wire value the server filters on.
func normalizeSourceType(t string) string {
	if t == "115" {
		return media.Link115
	}
	return t
}

// MovieResources lists every artifact attached to a movie: 115 shares,
// magnets and ed2k links.
func (c *Client) MovieResources(tmdbID int, f Filters) ([]*media.Resource, error) {
	var out []*media.Resource
	path := fmt.Sprintf("/resources/movie/%d", tmdbID)
	if err := c.get(path, f.values(true), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TVPacks lists the 115 packs of a show, which may span whole series or a
// subset of seasons. The coverage classifier partitions them afterwards;
// the route itself takes no filters.
func (c *Client) TVPacks(tmdbID int) ([]*media.Resource, error) {
	var out []*media.Resource
	path := fmt.Sprintf("/resources/tv/%d", tmdbID)
	if err := c.get(path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TVSeasonResources lists the magnet resources of one season.
func (c *Client) TVSeasonResources(tmdbID, season int, f Filters) ([]*media.Resource, error) {
	var out []*media.Resource
	path := fmt.Sprintf("/resources/tv/%d/season/%d", tmdbID, season)
	if err := c.get(path, f.values(false), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TVEpisodeResources lists the magnet and ed2k artifacts of one episode.
func (c *Client) TVEpisodeResources(tmdbID, season, episode int, f Filters) ([]*media.Resource, error) {
	var out []*media.Resource
	path := fmt.Sprintf("/resources/tv/%d/season/%d/episode/%d", tmdbID, season, episode)
	if err := c.get(path, f.values(false), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TVSeasonsResources fetches several seasons concurrently and returns the
// listings keyed by season number. The first error wins once the group
// drains.
func (c *Client) TVSeasonsResources(tmdbID int, seasons []int, f Filters) (map[int][]*media.Resource, error) {
	var (
		mu  sync.Mutex
		out = make(map[int][]*media.Resource, len(seasons))
	)

	g := new(errgroup.Group)
	g.SetLimit(seasonFanout)

	for _, season := range seasons {
		season := season // per-iteration copy, required under pre-1.22 loop semantics
		g.Go(func() error {
			resources, err := c.TVSeasonResources(tmdbID, season, f)
			if err != nil {
				return err
			}

			mu.Lock()
			out[season] = resources
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
