// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/style"
)

func init() {
	rootCmd.AddCommand(genresCmd)
	genresCmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")
}

// genresCmd lists the genre ids accepted by the discover filters.
var genresCmd = &cobra.Command{
	Use:       "genres <movie|tv>",
	Short:     "List TMDB genres usable with discover --genres",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{media.TypeMovie, media.TypeTV},
	Run: func(cmd *cobra.Command, args []string) {
		genres, err := api.New().Genres(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(genres))
			return
		}

		for _, g := range genres {
			fmt.Printf("%s %s\n", style.Faint(fmt.Sprintf("%5d", g.ID)), g.Name)
		}
	},
}
