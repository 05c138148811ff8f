package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/internal/cache"
	"github.com/wangjh9712/fullbr115/media"
)

func init() {
	filesystem.SetMemMapFs()
}

// testStore returns an isolated response store with a fixed clock far
// from expiry.
func testStore() *cache.Store {
	filesystem.SetMemMapFs()
	return cache.NewWith("/cache/responses", time.Hour, time.Now)
}

func TestCacheKey(t *testing.T) {
	Convey("Given request descriptors", t, func() {
		Convey("A bare path is its own key", func() {
			So(cacheKey("/tmdb/search", nil), ShouldEqual, "/tmdb/search")
		})

		Convey("Query parameters are encoded sorted", func() {
			q := url.Values{}
			q.Set("page", "2")
			q.Set("min_vote", "7.5")

			So(cacheKey("/tmdb/discover/movie", q), ShouldEqual,
				"/tmdb/discover/movie?min_vote=7.5&page=2")
		})
	})
}

func TestClientReads(t *testing.T) {
	Convey("Given a client over a counting server", t, func() {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":28,"name":"动作"},{"id":18,"name":"剧情"}]`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When the same read runs twice", func() {
			first, err := client.Genres(media.TypeMovie)
			So(err, ShouldBeNil)
			So(first, ShouldHaveLength, 2)

			second, err := client.Genres(media.TypeMovie)
			So(err, ShouldBeNil)

			Convey("Then the second is served from cache", func() {
				So(atomic.LoadInt32(&hits), ShouldEqual, 1)
				So(second, ShouldResemble, first)
			})
		})

		Convey("When the media types differ the keys differ", func() {
			_, err := client.Genres(media.TypeMovie)
			So(err, ShouldBeNil)
			_, err = client.Genres(media.TypeTV)
			So(err, ShouldBeNil)

			So(atomic.LoadInt32(&hits), ShouldEqual, 2)
		})
	})
}

func TestClientFailures(t *testing.T) {
	Convey("Given a server that refuses the first read", t, func() {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&hits, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"detail":"upstream offline"}`))
				return
			}
			_, _ = w.Write([]byte(`[{"id":18,"name":"剧情"}]`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When the first read fails", func() {
			_, err := client.Genres(media.TypeMovie)

			Convey("Then the failure carries status and server detail", func() {
				So(err, ShouldHaveSameTypeAs, &StatusError{})
				statusErr := err.(*StatusError)
				So(statusErr.Status, ShouldEqual, http.StatusBadGateway)
				So(statusErr.Detail, ShouldEqual, "upstream offline")
				So(statusErr.Error(), ShouldContainSubstring, "upstream offline")
			})

			Convey("Then nothing was cached and a retry reaches the server", func() {
				genres, err := client.Genres(media.TypeMovie)
				So(err, ShouldBeNil)
				So(genres, ShouldHaveLength, 1)
				So(atomic.LoadInt32(&hits), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a server that sends a torn body once", t, func() {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&hits, 1) == 1 {
				_, _ = w.Write([]byte(`[{"id":18,`))
				return
			}
			_, _ = w.Write([]byte(`[{"id":18,"name":"剧情"}]`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When the torn body arrives", func() {
			_, err := client.Genres(media.TypeMovie)
			So(err, ShouldHaveSameTypeAs, &DecodeError{})

			Convey("Then it was not cached either", func() {
				genres, err := client.Genres(media.TypeMovie)
				So(err, ShouldBeNil)
				So(genres, ShouldHaveLength, 1)
				So(atomic.LoadInt32(&hits), ShouldEqual, 2)
			})
		})
	})
}

func TestClientDecoding(t *testing.T) {
	Convey("Given a server with one title", t, func() {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{
				"tmdb_id": 94605,
				"title": "双城之战",
				"original_title": "Arcane",
				"media_type": "tv",
				"vote_average": 8.8,
				"genres": [{"id": 16, "name": "动画"}],
				"seasons": [
					{"id": 1, "season_number": 1, "name": "第 1 季", "episode_count": 9},
					{"id": 2, "season_number": 2, "name": "第 2 季", "episode_count": 9}
				]
			}`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When the details are fetched", func() {
			detail, err := client.Details(media.TypeTV, 94605)
			So(err, ShouldBeNil)

			Convey("Then the projection is mapped", func() {
				So(gotPath, ShouldEqual, "/tmdb/details/tv/94605")
				So(detail.TMDBID, ShouldEqual, 94605)
				So(detail.Type, ShouldEqual, media.TypeTV)
				So(detail.VoteAverage, ShouldEqual, 8.8)
				So(detail.Genres, ShouldHaveLength, 1)
				So(detail.Seasons, ShouldHaveLength, 2)
				So(detail.Seasons[1].Label(), ShouldEqual, "S2")
			})
		})
	})
}
