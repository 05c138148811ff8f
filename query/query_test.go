package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given a search history", t, func() {
		Convey("When queries are remembered", func() {
			So(Remember("dune", 1), ShouldBeNil)
			So(Remember("dune part two", 10), ShouldBeNil)

			Convey("Then suggestions come back most popular first", func() {
				// drop the memo so the history file is actually read
				suggested = make(map[string][]*record)

				s := SuggestMany("dune")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "dune part two")
			})

			Convey("Then the best suggestion is the top one", func() {
				suggested = make(map[string][]*record)

				So(Suggest("dune").MustGet(), ShouldEqual, "dune part two")
			})

			Convey("Then an unmatched input suggests nothing", func() {
				suggested = make(map[string][]*record)

				So(Suggest("zzzzzz").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(SuggestMany("dune"), ShouldBeEmpty)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  The BATMAN  "), ShouldEqual, "the batman")
		})
	})
}
