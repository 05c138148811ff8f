// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/color"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(seasonCmd)
	seasonCmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")
}

// seasonCmd shows one season of a show with its aired episodes.
var seasonCmd = &cobra.Command{
	Use:     "season <tmdb-id> <number>",
	Short:   "Show one season of a show with its episode list",
	Example: "  fullbr115 season 94605 2",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		handleErr(err)
		number, err := strconv.Atoi(args[1])
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching season %d...", icon.Get(icon.Search), number))
		season, err := api.New().SeasonDetails(id, number)
		handleErr(err)
		erase()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(season))
			return
		}

		fmt.Println(style.Title(season.String()))

		info := util.Quantify(len(season.Episodes), "episode", "episodes")
		if season.AirDate != "" {
			info += ", first aired " + season.AirDate
		}
		fmt.Println(style.Faint(info))
		fmt.Println()

		for i := range season.Episodes {
			e := &season.Episodes[i]

			line := fmt.Sprintf("%s %s", style.Fg(color.Cyan)(e.Code()), style.Bold(e.Name))
			if e.AirDate != "" {
				line += "  " + style.Faint(e.AirDate)
			}
			if e.VoteAverage > 0 {
				line += " " + style.Fg(color.Yellow)(fmt.Sprintf("★%.1f", e.VoteAverage))
			}

			fmt.Println(line)
		}
	},
}
