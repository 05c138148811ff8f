package media

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSize(t *testing.T) {
	Convey("Size decoding", t, func() {
		var r Resource

		Convey("Should accept a string", func() {
			So(json.Unmarshal([]byte(`{"size":"54.2GB"}`), &r), ShouldBeNil)
			So(r.Size.String(), ShouldEqual, "54.2GB")
		})

		Convey("Should accept a bare number", func() {
			So(json.Unmarshal([]byte(`{"size":1536}`), &r), ShouldBeNil)
			So(r.Size.String(), ShouldEqual, "1536")
		})

		Convey("Should decay to empty on null", func() {
			So(json.Unmarshal([]byte(`{"size":null}`), &r), ShouldBeNil)
			So(r.Size.String(), ShouldBeEmpty)
		})
	})

	Convey("Size rendering", t, func() {
		Convey("Human uses binary prefixes", func() {
			So(Size("1 KB").Human(), ShouldEqual, "1.0 KiB")
		})

		Convey("Human falls back to the raw text", func() {
			So(Size("n/a").Human(), ShouldEqual, "n/a")
		})
	})
}

func TestSortBySize(t *testing.T) {
	Convey("SortBySize", t, func() {
		a := &Resource{Title: "a", Size: "1 GB"}
		b := &Resource{Title: "b", Size: "500 MB"}
		c := &Resource{Title: "c", Size: "2 GB"}
		first := &Resource{Title: "first"}
		second := &Resource{Title: "second"}

		Convey("Should order largest first", func() {
			pool := []*Resource{a, b, c}
			SortBySize(pool)
			So(pool[0], ShouldEqual, c)
			So(pool[1], ShouldEqual, a)
			So(pool[2], ShouldEqual, b)
		})

		Convey("Should keep upstream order for unparseable sizes", func() {
			pool := []*Resource{first, second, a}
			SortBySize(pool)
			So(pool[0], ShouldEqual, a)
			So(pool[1], ShouldEqual, first)
			So(pool[2], ShouldEqual, second)
		})
	})
}
