package media

import (
	"encoding/json"
	"sort"

	"github.com/dustin/go-humanize"
)

// Link type discriminators for resources, matching the server wire values.
const (
	Link115    = "115_share"
	LinkMagnet = "magnet"
	LinkEd2k   = "ed2k"
)

// Size is an upstream size field. Depending on the resource origin it
// arrives as a display string ("54.2GB") or a bare number, so decoding
// is deliberately lenient.
type Size string

func (s *Size) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Size(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Size(num.String())
		return nil
	}

	*s = ""
	return nil
}

func (s Size) String() string {
	return string(s)
}

// Bytes returns the parsed byte count, 0 when unparseable.
func (s Size) Bytes() float64 {
	return ParseSize(string(s))
}

// Human renders the parsed size with binary prefixes, falling back to the
// raw text when parsing fails.
func (s Size) Human() string {
	b := s.Bytes()
	if b <= 0 {
		return string(s)
	}
	return humanize.IBytes(uint64(b))
}

// ByteCount is an exact size in bytes. Drive and share listings send it
// as a number or a numeric string depending on the endpoint.
type ByteCount int64

func (b *ByteCount) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*b = 0
			return nil
		}
		num = json.Number(str)
	}

	parsed, err := num.Int64()
	if err != nil {
		*b = 0
		return nil
	}

	*b = ByteCount(parsed)
	return nil
}

// Human renders the count with binary prefixes, or a dash for unknown and
// directory entries.
func (b ByteCount) Human() string {
	if b <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(b))
}

// Resource is a single downloadable artifact attached to a title: a 115
// share, a magnet or an ed2k link.
type Resource struct {
	Title              string   `json:"title"`
	Size               Size     `json:"size"`
	Link               string   `json:"link"`
	LinkType           string   `json:"link_type"`
	Resolution         string   `json:"resolution"`
	Quality            string   `json:"quality"`
	Source             string   `json:"source"`
	HasChineseSubtitle bool     `json:"has_chinese_subtitle"`
	SeasonList         []string `json:"season_list"`

	// CoverageTag annotates partial season packs. The coverage classifier
	// assigns it; whole-series packs and non-pack resources carry none.
	CoverageTag string `json:"coverage_tag,omitempty"`
}

func (r *Resource) String() string {
	return r.Title
}

// SortBySize orders resources largest first, keeping the upstream order
// for equal or unparseable sizes.
func SortBySize(resources []*Resource) {
	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].Size.Bytes() > resources[j].Size.Bytes()
	})
}
