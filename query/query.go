// Package query keeps a ranked history of past searches and serves
// fuzzy suggestions out of it.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/where"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var history = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// memoized per-input suggestion lists, valid for the process lifetime
var suggested = make(map[string][]*record)

// Remember stores a search in the history, bumping its rank when it was
// searched before.
func Remember(q string, weight int) error {
	q = sanitize(q)
	known, expired, err := history.Get()
	if expired || err != nil || known == nil {
		known = make(map[string]*record)
	}

	if rec, ok := known[q]; ok {
		rec.Rank += weight
	} else {
		known[q] = &record{Rank: weight, Query: q}
	}

	return history.Set(known)
}

// Suggest returns the best historical completion for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns all historical completions for a partial input,
// most popular first. Disabled from config it returns nothing.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	var records []*record

	if prev, ok := suggested[q]; ok {
		records = prev
	} else {
		known, expired, err := history.Get()
		if err != nil || expired || known == nil {
			return []string{}
		}

		for _, rec := range known {
			if fuzzy.Match(q, rec.Query) {
				records = append(records, rec)
			}
		}

		slices.SortFunc(records, func(a, b *record) int {
			return b.Rank - a.Rank
		})

		suggested[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
