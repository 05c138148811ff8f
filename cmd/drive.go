// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(driveCmd)
	driveCmd.AddCommand(driveLsCmd)

	driveLsCmd.Flags().StringP("cid", "c", "0", "Directory id to list, 0 is the root")
	driveLsCmd.Flags().IntP("limit", "l", 50, "Entries per page")
	driveLsCmd.Flags().IntP("offset", "o", 0, "Entries to skip, for paging")
	driveLsCmd.Flags().BoolP("json", "j", false, "Print the raw listing as JSON")
}

// driveCmd is the parent for browsing the user's own 115 drive.
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Browse your 115 drive",
}

// driveLsCmd lists one directory of the drive with its breadcrumb path.
var driveLsCmd = &cobra.Command{
	Use:     "ls",
	Short:   "List a directory of your 115 drive",
	Example: "  fullbr115 drive ls\n  fullbr115 drive ls --cid 2593706461875482622",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf("%s Listing drive...", icon.Get(icon.Progress)))
		listing, err := api.New().DriveList(
			lo.Must(cmd.Flags().GetString("cid")),
			lo.Must(cmd.Flags().GetInt("limit")),
			lo.Must(cmd.Flags().GetInt("offset")),
		)
		handleErr(err)
		erase()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(listing))
			return
		}

		if crumbs := listing.Breadcrumb(); crumbs != "" {
			fmt.Println(style.Title(crumbs))
		}

		if len(listing.List) == 0 {
			fmt.Printf("%s the directory is empty\n", icon.Get(icon.Search))
			return
		}

		for i := range listing.List {
			f := &listing.List[i]
			fmt.Printf("%s  %s\n", entryLine(f), style.Faint(f.ID))
		}
		fmt.Println(style.Faint(fmt.Sprintf("%d of %s", len(listing.List), util.Quantify(listing.Count, "entry", "entries"))))
	},
}
