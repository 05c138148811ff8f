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
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(subscribeCmd)
}

// subscribeCmd is the parent for release tracking on the server.
var subscribeCmd = &cobra.Command{
	Use:     "subscribe",
	Aliases: []string{"sub"},
	Short:   "Track titles and get new episodes saved automatically",
}

func init() {
	subscribeCmd.AddCommand(subscribeListCmd)
	subscribeListCmd.Flags().BoolP("json", "j", false, "Print the raw list as JSON")
}

// subscribeListCmd shows every tracked title with its progress.
var subscribeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked titles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		subs, err := api.New().Subscriptions()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(subs))
			return
		}

		if len(subs) == 0 {
			fmt.Printf("%s nothing is tracked yet\n", icon.Get(icon.Search))
			return
		}

		for i := range subs {
			fmt.Println(subscriptionLine(&subs[i]))
		}
		fmt.Println(style.Faint(util.Quantify(len(subs), "subscription", "subscriptions")))
	},
}

func subscriptionLine(s *api.Subscription) string {
	var b strings.Builder

	b.WriteString(icon.Get(icon.Mark) + " ")
	b.WriteString(style.Bold(s.String()))

	if s.Status == "completed" {
		b.WriteString(" " + style.Fg(style.SuccessColor)(s.Status))
	} else if s.Status != "" {
		b.WriteString(" " + style.Faint(s.Status))
	}

	if progress := s.Progress(); progress != "-" {
		b.WriteString(" " + style.Fg(color.Cyan)(progress))
	}

	if s.Message != "" {
		b.WriteString(" " + style.Faint(s.Message))
	}

	b.WriteString("  " + style.Faint(s.ID))

	return b.String()
}

func init() {
	subscribeCmd.AddCommand(subscribeAddCmd)

	subscribeAddCmd.Flags().IntP("season", "n", 0, "Season to track, defaults to 1 for tv")
	subscribeAddCmd.Flags().IntP("start-episode", "e", 0, "First episode still missing, earlier ones count as had")
}

// subscribeAddCmd starts tracking a title. The catalog supplies the
// title and poster so the server entry is self-describing.
var subscribeAddCmd = &cobra.Command{
	Use:       "add <movie|tv> <tmdb-id>",
	Short:     "Track a title",
	Example:   "  fullbr115 subscribe add movie 693134\n  fullbr115 subscribe add tv 94605 --season 3",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{media.TypeMovie, media.TypeTV},
	Run: func(cmd *cobra.Command, args []string) {
		mediaType := args[0]
		id, err := strconv.Atoi(args[1])
		handleErr(err)

		season := lo.Must(cmd.Flags().GetInt("season"))
		if mediaType == media.TypeTV && season == 0 {
			season = 1
		}

		client := api.New()

		erase := util.PrintErasable(fmt.Sprintf("%s Subscribing...", icon.Get(icon.Progress)))
		detail, err := client.Details(mediaType, id)
		handleErr(err)

		receipt, err := client.Subscribe(api.SubscribeRequest{
			TMDBID:       id,
			MediaType:    mediaType,
			Title:        detail.Title,
			PosterPath:   detail.PosterPath,
			SeasonNumber: season,
			StartEpisode: lo.Must(cmd.Flags().GetInt("start-episode")),
		})
		handleErr(err)
		erase()

		fmt.Printf("%s %s %s\n", icon.Get(icon.Success), style.Bold(detail.Title), receipt.Message)
	},
}

func init() {
	subscribeCmd.AddCommand(subscribeRmCmd)
}

// subscribeRmCmd stops tracking by subscription id.
var subscribeRmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Stop tracking",
	Example: "  fullbr115 subscribe rm tv_94605_s3",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		subs, err := api.New().Subscriptions()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Map(subs, func(s api.Subscription, _ int) string { return s.ID }), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		client := api.New()
		for _, id := range args {
			handleErr(client.Unsubscribe(id))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(id))
		}
	},
}
