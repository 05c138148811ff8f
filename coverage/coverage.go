// Package coverage reconciles a flat resource pool against a show's
// season structure. Shared packs often bundle several seasons or the
// whole series, so a naive per-season listing would show the same pack
// many times over and overstate what is actually available.
package coverage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wangjh9712/fullbr115/media"
)

// Report partitions a pool into whole-series packs and per-season views.
// A pack never appears in both: whole-series membership, decided by link
// identity, excludes it from every season view.
type Report struct {
	seasons  []int
	whole    []*media.Resource
	bySeason map[int][]*media.Resource
}

// Classify builds a report for the pool against the given seasons.
// Specials (season 0) do not count towards series completeness. The only
// mutation of the inputs is the coverage tag written to each resource,
// so classifying the same inputs again reproduces the same report.
func Classify(pool []*media.Resource, seasons []media.Season) *Report {
	report := &Report{
		seasons:  validSeasons(seasons),
		bySeason: make(map[int][]*media.Resource),
	}

	wholeLinks := make(map[string]struct{})
	for _, resource := range pool {
		if len(report.seasons) == 0 || !coversAll(resource, report.seasons) {
			continue
		}
		if _, dup := wholeLinks[resource.Link]; dup {
			continue
		}
		wholeLinks[resource.Link] = struct{}{}
		resource.CoverageTag = ""
		report.whole = append(report.whole, resource)
	}

	for _, resource := range pool {
		if _, whole := wholeLinks[resource.Link]; whole {
			continue
		}

		listed := false
		for _, season := range report.seasons {
			if !hasLabel(resource, seasonLabel(season)) {
				continue
			}
			report.bySeason[season] = append(report.bySeason[season], resource)
			listed = true
		}

		if listed {
			resource.CoverageTag = tag(resource, len(report.seasons))
		}
	}

	media.SortBySize(report.whole)
	for _, view := range report.bySeason {
		media.SortBySize(view)
	}

	return report
}

// WholeSeries returns the packs covering every season, largest first.
func (r *Report) WholeSeries() []*media.Resource {
	return r.whole
}

// Season returns the packs shown under season n, largest first.
func (r *Report) Season(n int) []*media.Resource {
	return r.bySeason[n]
}

// Seasons returns the season numbers the report was built against, in
// the order the detail API listed them.
func (r *Report) Seasons() []int {
	return r.seasons
}

// Empty reports whether classification produced nothing at all.
func (r *Report) Empty() bool {
	return len(r.whole) == 0 && len(r.bySeason) == 0
}

func validSeasons(seasons []media.Season) []int {
	var numbers []int
	for _, season := range seasons {
		if season.SeasonNumber > 0 {
			numbers = append(numbers, season.SeasonNumber)
		}
	}
	return numbers
}

func seasonLabel(n int) string {
	return "S" + strconv.Itoa(n)
}

func hasLabel(resource *media.Resource, label string) bool {
	for _, have := range resource.SeasonList {
		if have == label {
			return true
		}
	}
	return false
}

func coversAll(resource *media.Resource, seasons []int) bool {
	for _, season := range seasons {
		if !hasLabel(resource, seasonLabel(season)) {
			return false
		}
	}
	return true
}

// tag derives the human-readable coverage description for a pack that
// covers part of the series.
func tag(resource *media.Resource, totalSeasons int) string {
	var parsed []int
	for _, label := range resource.SeasonList {
		if n, ok := parseLabel(label); ok {
			parsed = append(parsed, n)
		}
	}
	sort.Ints(parsed)

	switch {
	case len(parsed) == totalSeasons:
		// every season after all, nothing partial to announce
		return ""
	case len(parsed) >= 2 && contiguous(parsed):
		return fmt.Sprintf("covers S%d–S%d", parsed[0], parsed[len(parsed)-1])
	case len(parsed) == 1:
		return fmt.Sprintf("covers only S%d", parsed[0])
	default:
		return "covers " + strings.Join(resource.SeasonList, ",")
	}
}

func parseLabel(label string) (int, bool) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(label, "S"), "s")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func contiguous(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}
