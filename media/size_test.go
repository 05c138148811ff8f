package media

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSize(t *testing.T) {
	Convey("ParseSize", t, func() {
		Convey("Should handle every binary unit", func() {
			So(ParseSize("1 B"), ShouldEqual, 1)
			So(ParseSize("1 KB"), ShouldEqual, 1024)
			So(ParseSize("1 MB"), ShouldEqual, 1024*1024)
			So(ParseSize("1.5 GB"), ShouldEqual, 1.5*1024*1024*1024)
			So(ParseSize("2TB"), ShouldEqual, 2.0*1024*1024*1024*1024)
			So(ParseSize("1PB"), ShouldEqual, 1024.0*1024*1024*1024*1024)
		})

		Convey("Should be case-insensitive about the unit", func() {
			So(ParseSize("54.2gb"), ShouldEqual, ParseSize("54.2GB"))
			So(ParseSize("10 Mb"), ShouldEqual, 10*1024*1024)
		})

		Convey("Should tolerate missing whitespace", func() {
			So(ParseSize("700MB"), ShouldEqual, 700*1024*1024)
		})

		Convey("Should find a size embedded in decorated text", func() {
			So(ParseSize("约 54.2GB"), ShouldEqual, 54.2*1024*1024*1024)
		})

		Convey("Should return 0 for empty or unparseable input", func() {
			So(ParseSize(""), ShouldEqual, 0)
			So(ParseSize("abc"), ShouldEqual, 0)
			So(ParseSize("GB"), ShouldEqual, 0)
		})

		Convey("Should keep the numeric part for unknown units", func() {
			So(ParseSize("10 XX"), ShouldEqual, 10)
		})
	})
}
