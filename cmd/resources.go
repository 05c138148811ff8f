// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/color"
	"github.com/wangjh9712/fullbr115/coverage"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(resourcesCmd)
}

// resourcesCmd is the parent for resource discovery.
var resourcesCmd = &cobra.Command{
	Use:     "resources",
	Aliases: []string{"res"},
	Short:   "List downloadable resources for a title",
}

// resourceFlags registers the filter and output flags shared by the movie
// and tv listings.
func resourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Only list this link type: 115, magnet or ed2k")
	cmd.Flags().Bool("zh", false, "Only list resources with Chinese subtitles")
	cmd.Flags().String("min-resolution", "", "Minimum resolution, e.g. 1080p or 2160p")
	cmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")
	cmd.Flags().BoolP("grab", "g", false, "Send the largest magnet or ed2k link to the 115 offline queue")

	lo.Must0(cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"115", "magnet", "ed2k"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// flagFilters merges the configured baseline filters with the flags set on
// this invocation.
func flagFilters(cmd *cobra.Command) api.Filters {
	filters := api.DefaultFilters()

	if t := lo.Must(cmd.Flags().GetString("type")); t != "" {
		filters.SourceType = t
	}
	if lo.Must(cmd.Flags().GetBool("zh")) {
		filters.RequireZh = true
	}
	if r := lo.Must(cmd.Flags().GetString("min-resolution")); r != "" {
		filters.MinResolution = r
	}

	return filters
}

func init() {
	resourcesCmd.AddCommand(resourcesMovieCmd)
	resourceFlags(resourcesMovieCmd)
}

// resourcesMovieCmd lists resources for one movie.
var resourcesMovieCmd = &cobra.Command{
	Use:     "movie <tmdb-id>",
	Short:   "List resources for a movie",
	Example: "  fullbr115 resources movie 693134 --zh\n  fullbr115 resources movie 693134 --grab",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Looking up resources...", icon.Get(icon.Search)))
		resources, err := api.New().MovieResources(id, flagFilters(cmd))
		handleErr(err)
		erase()

		if lo.Must(cmd.Flags().GetBool("grab")) {
			handleErr(grabLargest(resources))
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(resources))
			return
		}

		media.SortBySize(resources)
		printResources(resources)
	},
}

func init() {
	resourcesCmd.AddCommand(resourcesTVCmd)
	resourceFlags(resourcesTVCmd)

	resourcesTVCmd.Flags().IntP("season", "n", 0, "Only list resources for this season")
	resourcesTVCmd.Flags().IntP("episode", "e", 0, "Only list resources for this episode, requires --season")
	resourcesTVCmd.Flags().Bool("all-seasons", false, "List every season in one go")
	resourcesTVCmd.MarkFlagsMutuallyExclusive("season", "all-seasons")
}

// resourcesTVCmd lists resources for a show. Without a season it shows the
// season packs reconciled against the season structure, so whole-series
// bundles appear once instead of under every season.
var resourcesTVCmd = &cobra.Command{
	Use:     "tv <tmdb-id>",
	Short:   "List resources for a show",
	Example: "  fullbr115 resources tv 94605\n  fullbr115 resources tv 94605 --season 2 --episode 3",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		handleErr(err)

		var (
			season  = lo.Must(cmd.Flags().GetInt("season"))
			episode = lo.Must(cmd.Flags().GetInt("episode"))
			all     = lo.Must(cmd.Flags().GetBool("all-seasons"))
			asJSON  = lo.Must(cmd.Flags().GetBool("json"))
			grab    = lo.Must(cmd.Flags().GetBool("grab"))
		)

		if episode > 0 && season == 0 {
			handleErr(errors.New("--episode requires --season"))
		}

		client := api.New()

		switch {
		case season > 0:
			erase := util.PrintErasable(fmt.Sprintf("%s Looking up resources...", icon.Get(icon.Search)))
			resources, err := seasonResources(client, id, season, episode, flagFilters(cmd))
			handleErr(err)
			erase()

			if grab {
				handleErr(grabLargest(resources))
				return
			}
			if asJSON {
				handleErr(printJSON(resources))
				return
			}

			media.SortBySize(resources)
			printResources(resources)

		case all:
			erase := util.PrintErasable(fmt.Sprintf("%s Listing every season...", icon.Get(icon.Search)))
			detail, err := client.Details(media.TypeTV, id)
			handleErr(err)
			bySeason, err := client.TVSeasonsResources(id, seasonNumbers(detail.Seasons), flagFilters(cmd))
			handleErr(err)
			erase()

			if asJSON {
				handleErr(printJSON(bySeason))
				return
			}

			printSeasonSections(detail.Seasons, func(n int) []*media.Resource {
				resources := bySeason[n]
				media.SortBySize(resources)
				return resources
			})

		default:
			erase := util.PrintErasable(fmt.Sprintf("%s Looking up season packs...", icon.Get(icon.Search)))
			detail, err := client.Details(media.TypeTV, id)
			handleErr(err)
			packs, err := client.TVPacks(id)
			handleErr(err)
			erase()

			report := coverage.Classify(packs, detail.Seasons)

			if grab {
				handleErr(grabLargest(packs))
				return
			}
			if asJSON {
				handleErr(printJSON(packs))
				return
			}

			printReport(report, detail.Seasons)
		}
	},
}

// seasonResources fetches one season or one episode listing.
func seasonResources(client *api.Client, id, season, episode int, filters api.Filters) ([]*media.Resource, error) {
	if episode > 0 {
		return client.TVEpisodeResources(id, season, episode, filters)
	}
	return client.TVSeasonResources(id, season, filters)
}

// seasonNumbers extracts the broadcast season numbers, skipping specials.
func seasonNumbers(seasons []media.Season) []int {
	return lo.FilterMap(seasons, func(s media.Season, _ int) (int, bool) {
		return s.SeasonNumber, s.SeasonNumber > 0
	})
}

// printReport renders the reconciled pack view: whole-series bundles
// first, then one section per season.
func printReport(report *coverage.Report, seasons []media.Season) {
	if report.Empty() {
		fmt.Printf("%s no season packs found\n", icon.Get(icon.Search))
		return
	}

	if whole := report.WholeSeries(); len(whole) > 0 {
		fmt.Println(style.Title("Whole series"))
		for i, r := range whole {
			fmt.Println(resourceLine(i, r))
		}
		fmt.Println()
	}

	printSeasonSections(seasons, report.Season)
}

// printSeasonSections renders one headed section per broadcast season.
func printSeasonSections(seasons []media.Season, resolve func(int) []*media.Resource) {
	for i := range seasons {
		s := &seasons[i]
		if s.SeasonNumber <= 0 {
			continue
		}

		resources := resolve(s.SeasonNumber)
		if len(resources) == 0 {
			continue
		}

		fmt.Println(style.Fg(color.Cyan)(style.Bold(s.Label())) + " " + s.Name)
		for j, r := range resources {
			fmt.Println(resourceLine(j, r))
		}
		fmt.Println()
	}
}

// grabLargest queues the biggest magnet or ed2k resource for offline
// download on the drive.
func grabLargest(resources []*media.Resource) error {
	candidates := lo.Filter(resources, func(r *media.Resource, _ int) bool {
		return r.Link != "" && (r.LinkType == media.LinkMagnet || r.LinkType == media.LinkEd2k)
	})
	if len(candidates) == 0 {
		return errors.New("nothing to grab, no magnet or ed2k resources in the listing")
	}

	media.SortBySize(candidates)
	pick := candidates[0]

	erase := util.PrintErasable(fmt.Sprintf("%s Queueing %s...", icon.Get(icon.Progress), pick.Title))
	receipt, err := api.New().OfflineAdd([]string{pick.Link}, "")
	erase()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n", icon.Get(icon.Success), receipt.Message, style.Faint(pick.Size.Human()))
	return nil
}
