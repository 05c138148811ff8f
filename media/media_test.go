package media

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeta(t *testing.T) {
	Convey("Meta helpers", t, func() {
		m := Meta{TMDBID: 693134, Title: "Dune: Part Two", Type: TypeMovie, ReleaseDate: "2024-02-27"}

		Convey("Year extracts the leading year", func() {
			So(m.Year(), ShouldEqual, "2024")
			So((&Meta{}).Year(), ShouldBeEmpty)
		})

		Convey("SiteURL points at the TMDB page", func() {
			So(m.SiteURL(), ShouldEqual, "https://www.themoviedb.org/movie/693134")
		})
	})
}

func TestSeason(t *testing.T) {
	Convey("Season and episode rendering", t, func() {
		s := Season{SeasonNumber: 3, Name: "Season 3"}

		Convey("Label uses the short pack form", func() {
			So(s.Label(), ShouldEqual, "S3")
		})

		Convey("Episode codes are zero-padded", func() {
			e := Episode{SeasonNumber: 1, EpisodeNumber: 7}
			So(e.Code(), ShouldEqual, "S01E07")
		})
	})
}
