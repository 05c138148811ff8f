package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
		Convey("Should flatten release-style names", func() {
			So(SanitizeFilename("Movie (2024) [2160p]"), ShouldEqual, "Movie_(2024)_[2160p]")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "season", "seasons"), ShouldEqual, "1 season")
		So(Quantify(3, "season", "seasons"), ShouldEqual, "3 seasons")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("movie"), ShouldEqual, "Movie")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<value>[\d.]+)\s*(?P<unit>[a-zA-Z]+)`)
		groups := ReGroups(re, "1.5 GB")
		So(groups["value"], ShouldEqual, "1.5")
		So(groups["unit"], ShouldEqual, "GB")

		Convey("Should return an empty map on no match", func() {
			So(len(ReGroups(re, "???")), ShouldEqual, 0)
		})
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/movie.iso"), ShouldEqual, "movie")
		So(FileStem("movie"), ShouldEqual, "movie")
	})
}

func TestMin(t *testing.T) {
	Convey("Min", t, func() {
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Min(7), ShouldEqual, 7)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)

		Convey("Should yield the zero value once drained", func() {
			So(s.Pop(), ShouldEqual, 0)
			So(s.Len(), ShouldEqual, 0)
		})
	})
}
