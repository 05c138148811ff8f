package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wangjh9712/fullbr115/media"
)

func TestFilterValues(t *testing.T) {
	Convey("Given resource filters", t, func() {
		f := Filters{
			SourceType:    "115",
			RequireZh:     true,
			MinResolution: "1080p",
		}

		Convey("The movie form carries the normalized source type", func() {
			q := f.values(true)
			So(q.Get("source_type"), ShouldEqual, media.Link115)
			So(q.Get("require_zh"), ShouldEqual, "true")
			So(q.Get("min_resolution"), ShouldEqual, "1080p")
		})

		Convey("Wire spellings pass through untouched", func() {
			f.SourceType = media.LinkMagnet
			So(f.values(true).Get("source_type"), ShouldEqual, "magnet")
		})

		Convey("Season and episode forms drop the source type", func() {
			q := f.values(false)
			So(q.Has("source_type"), ShouldBeFalse)
			So(q.Get("require_zh"), ShouldEqual, "true")
		})

		Convey("Empty filters encode to nothing", func() {
			So(Filters{}.values(true), ShouldHaveLength, 0)
		})
	})
}

func TestSeasonsFanout(t *testing.T) {
	Convey("Given a server with per-season listings", t, func() {
		var (
			mu    sync.Mutex
			paths []string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			paths = append(paths, r.URL.Path)
			mu.Unlock()

			var season int
			_, _ = fmt.Sscanf(r.URL.Path, "/resources/tv/94605/season/%d", &season)
			_, _ = fmt.Fprintf(w, `[{"title":"S%d pack","size":"%d.0GB","link_type":"magnet"}]`, season, season)
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When three seasons are fetched together", func() {
			out, err := client.TVSeasonsResources(94605, []int{1, 2, 3}, Filters{})
			So(err, ShouldBeNil)

			Convey("Then every season maps to its own listing", func() {
				So(out, ShouldHaveLength, 3)
				So(out[2][0].Title, ShouldEqual, "S2 pack")
				So(paths, ShouldHaveLength, 3)
			})
		})

		Convey("When one season errors the whole fetch fails", func() {
			bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/resources/tv/94605/season/2" {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				_, _ = w.Write([]byte(`[]`))
			}))
			Reset(bad.Close)

			client := NewWith(bad.URL, bad.Client(), testStore())
			_, err := client.TVSeasonsResources(94605, []int{1, 2, 3}, Filters{})
			So(err, ShouldHaveSameTypeAs, &StatusError{})
		})
	})
}
