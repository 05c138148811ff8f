// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/color"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/open"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(detailsCmd)

	detailsCmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")
	detailsCmd.Flags().BoolP("open", "o", false, "Open the TMDB page in the browser instead of printing")
}

// detailsCmd shows the full projection of one title, including the season
// structure for shows.
var detailsCmd = &cobra.Command{
	Use:     "details <movie|tv> <tmdb-id>",
	Short:   "Show full details for one title",
	Example: "  fullbr115 details tv 94605\n  fullbr115 details movie 693134 --open",
	Args:    cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{media.TypeMovie, media.TypeTV}, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		mediaType := args[0]
		id, err := strconv.Atoi(args[1])
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching details...", icon.Get(icon.Search)))
		detail, err := api.New().Details(mediaType, id)
		handleErr(err)
		erase()

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(detail.SiteURL()))
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(detail))
			return
		}

		printDetail(detail)
	},
}

func printDetail(detail *media.Detail) {
	fmt.Println(style.Title(detail.Title))
	if detail.OriginalTitle != "" && detail.OriginalTitle != detail.Title {
		fmt.Println(style.Faint(detail.OriginalTitle))
	}

	var facts []string
	if year := detail.Year(); year != "" {
		facts = append(facts, year)
	}
	if detail.Status != "" {
		facts = append(facts, detail.Status)
	}
	if detail.VoteAverage > 0 {
		facts = append(facts, fmt.Sprintf("★%.1f", detail.VoteAverage))
	}
	if len(detail.Genres) > 0 {
		names := lo.Map(detail.Genres, func(g media.Genre, _ int) string { return g.Name })
		facts = append(facts, strings.Join(names, ", "))
	}
	if len(facts) > 0 {
		fmt.Println(style.Faint(strings.Join(facts, " · ")))
	}

	if detail.Tagline != "" {
		fmt.Println(style.Italic(detail.Tagline))
	}

	if detail.Overview != "" {
		fmt.Println()
		fmt.Println(wrap(detail.Overview))
	}

	if names := personNames(detail.Directors, 0); names != "" {
		fmt.Println()
		fmt.Printf("%s %s\n", style.Bold("Directed by"), names)
	}
	if names := personNames(detail.Cast, 8); names != "" {
		fmt.Printf("%s %s\n", style.Bold("Starring"), names)
	}

	if len(detail.Seasons) > 0 {
		fmt.Println()
		fmt.Println(style.Bold("Seasons"))
		for i := range detail.Seasons {
			s := &detail.Seasons[i]
			info := util.Quantify(s.EpisodeCount, "episode", "episodes")
			if s.AirDate != "" {
				info += ", " + s.AirDate
			}
			fmt.Printf("  %s %s  %s\n", style.Fg(color.Cyan)(s.Label()), s.Name, style.Faint(info))
		}
	}

	if recs := lo.Subset(detail.Recommendations, 0, 5); len(recs) > 0 {
		fmt.Println()
		fmt.Println(style.Bold("You may also like"))
		for i := range recs {
			fmt.Println(metaLine(i, &recs[i]))
		}
	}

	fmt.Println()
	fmt.Printf("%s %s\n", icon.Get(icon.Link), style.Faint(detail.SiteURL()))
}

// personNames joins credit names, keeping at most limit of them. Zero
// means no limit.
func personNames(people []media.Person, limit int) string {
	if limit > 0 && len(people) > limit {
		people = people[:limit]
	}

	names := lo.Map(people, func(p media.Person, _ int) string { return p.Name })
	return strings.Join(names, ", ")
}
