package api

import (
	"fmt"

	"github.com/wangjh9712/fullbr115/log"
	"github.com/wangjh9712/fullbr115/media"
)

const subscriptionsPath = "/subscribe/list"

// Subscription is one tracked title on the server. Movie entries wait for
// a release date, tv entries track a single season episode by episode.
type Subscription struct {
	ID              string            `json:"id"`
	TMDBID          int               `json:"tmdb_id"`
	MediaType       string            `json:"media_type"`
	Title           string            `json:"title"`
	PosterPath      string            `json:"poster_path,omitempty"`
	SeasonNumber    int               `json:"season_number,omitempty"`
	CurrentEpisode  int               `json:"current_episode,omitempty"`
	TotalEpisodes   int               `json:"total_episodes,omitempty"`
	EpisodeAirDates map[string]string `json:"episode_air_dates,omitempty"`
	ReleaseDate     string            `json:"release_date,omitempty"`
	Status          string            `json:"status,omitempty"`
	Message         string            `json:"message,omitempty"`
	SaveCID         string            `json:"save_cid,omitempty"`
	LastCheckTime   string            `json:"last_check_time,omitempty"`
	NextCheckTime   string            `json:"next_check_time,omitempty"`
}

func (s *Subscription) String() string {
	if s.MediaType == media.TypeTV && s.SeasonNumber > 0 {
		return fmt.Sprintf("%s S%d", s.Title, s.SeasonNumber)
	}
	return s.Title
}

// Progress renders tv tracking state as "3/12". Movies and untracked
// titles render as a dash.
func (s *Subscription) Progress() string {
	if s.MediaType != media.TypeTV || s.TotalEpisodes == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", s.CurrentEpisode, s.TotalEpisodes)
}

// SubscribeRequest asks the server to start tracking a title.
// SeasonNumber and StartEpisode only apply to tv.
type SubscribeRequest struct {
	TMDBID       int    `json:"tmdb_id"`
	MediaType    string `json:"media_type"`
	Title        string `json:"title"`
	PosterPath   string `json:"poster_path,omitempty"`
	SeasonNumber int    `json:"season_number,omitempty"`
	StartEpisode int    `json:"start_episode,omitempty"`
}

// Subscriptions fetches the tracked titles, cache-first like any other
// read.
func (c *Client) Subscriptions() ([]Subscription, error) {
	log.Info("api: fetching subscriptions")

	var subs []Subscription
	if err := c.get(subscriptionsPath, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Subscribe starts tracking a title. The cached subscription list is
// invalidated so the next read reflects the addition.
func (c *Client) Subscribe(req SubscribeRequest) (*Receipt, error) {
	log.Infof("api: subscribing to %q", req.Title)

	receipt := &Receipt{}
	if err := c.post("/subscribe/add", req, receipt); err != nil {
		return nil, err
	}

	c.store.Delete(subscriptionsPath)
	return receipt, nil
}

// Unsubscribe stops tracking a subscription by its id and invalidates
// the cached list.
func (c *Client) Unsubscribe(id string) error {
	log.Infof("api: removing subscription %s", id)

	if err := c.del("/subscribe/" + id); err != nil {
		return err
	}

	c.store.Delete(subscriptionsPath)
	return nil
}
