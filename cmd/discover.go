// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().IntP("page", "p", 1, "Result page to fetch")
	discoverCmd.Flags().String("sort", "", "Sort order, e.g. popularity.desc, vote_average.desc, primary_release_date.desc")
	discoverCmd.Flags().StringP("genres", "g", "", "Comma separated TMDB genre ids, e.g. 16,35")
	discoverCmd.Flags().String("from", "", "Earliest release date, YYYY-MM-DD")
	discoverCmd.Flags().String("to", "", "Latest release date, YYYY-MM-DD")
	discoverCmd.Flags().Float64("min-vote", 0, "Hide titles with a lower average vote")
	discoverCmd.Flags().Int("min-votes", 0, "Hide titles with fewer votes")
	discoverCmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")

	lo.Must0(discoverCmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"popularity.desc", "vote_average.desc", "primary_release_date.desc"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// discoverCmd browses the catalog without a search query, ordered and
// filtered server-side.
var discoverCmd = &cobra.Command{
	Use:       "discover <movie|tv>",
	Short:     "Browse the catalog by popularity, rating or release date",
	Example:   "  fullbr115 discover movie --from 2024-01-01\n  fullbr115 discover tv --sort vote_average.desc --min-votes 1000",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{media.TypeMovie, media.TypeTV},
	Run: func(cmd *cobra.Command, args []string) {
		mediaType := args[0]

		opts := api.DiscoverOptions{
			Page:         lo.Must(cmd.Flags().GetInt("page")),
			SortBy:       lo.Must(cmd.Flags().GetString("sort")),
			WithGenres:   lo.Must(cmd.Flags().GetString("genres")),
			StartDate:    lo.Must(cmd.Flags().GetString("from")),
			EndDate:      lo.Must(cmd.Flags().GetString("to")),
			MinVote:      lo.Must(cmd.Flags().GetFloat64("min-vote")),
			MinVoteCount: lo.Must(cmd.Flags().GetInt("min-votes")),
		}

		if opts.SortBy == "" {
			opts.SortBy = viper.GetString(key.DiscoverSortBy)
		}
		if opts.MinVoteCount == 0 {
			opts.MinVoteCount = viper.GetInt(key.DiscoverMinVotes)
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Browsing %s catalog...", icon.Get(icon.Search), mediaType))
		result, err := api.New().Discover(mediaType, opts)
		handleErr(err)
		erase()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(result))
			return
		}

		if len(result.Results) == 0 {
			fmt.Printf("%s nothing matches these filters\n", icon.Get(icon.Search))
			return
		}

		for i := range result.Results {
			fmt.Println(metaLine(i, &result.Results[i]))
		}
		fmt.Println(resultFooter(result))
	},
}
