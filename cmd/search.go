// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/query"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("page", "p", 1, "Result page to fetch")
	searchCmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")
	searchCmd.Flags().Bool("closest", false, "Print only the title closest to the query")
}

// searchCmd finds movies and shows in the catalog by free text.
var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search the catalog for movies and shows",
	Example: "  fullbr115 search 沙丘\n  fullbr115 search \"dune part two\" --page 2",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")

		erase := util.PrintErasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Search), text))
		result, err := api.New().Search(text, lo.Must(cmd.Flags().GetInt("page")))
		handleErr(err)
		erase()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(result))
			return
		}

		if len(result.Results) == 0 {
			fmt.Printf("%s nothing found for %s\n", icon.Get(icon.Search), text)
			return
		}

		if lo.Must(cmd.Flags().GetBool("closest")) {
			closest := lo.MinBy(result.Results, func(a, b media.Meta) bool {
				return levenshtein.Distance(strings.ToLower(a.Title), strings.ToLower(text)) <
					levenshtein.Distance(strings.ToLower(b.Title), strings.ToLower(text))
			})
			fmt.Println(metaLine(0, &closest))
			return
		}

		for i := range result.Results {
			fmt.Println(metaLine(i, &result.Results[i]))
		}
		fmt.Println(resultFooter(result))
	},
}
