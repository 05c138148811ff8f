// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(offlineCmd)
	offlineCmd.AddCommand(offlineAddCmd)

	offlineAddCmd.Flags().String("to-cid", "", "Drive directory id to download into, as shown by drive ls")
}

// offlineCmd is the parent for the 115 offline download queue.
var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Manage the 115 offline download queue",
}

// offlineAddCmd queues links for offline download on the drive.
var offlineAddCmd = &cobra.Command{
	Use:     "add <url>...",
	Short:   "Queue magnet, ed2k or http links for offline download",
	Example: "  fullbr115 offline add \"magnet:?xt=urn:btih:c12fe1c06bba254a9dc9f519b335aa7c1367a88a\"",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf(
			"%s Queueing %s...",
			icon.Get(icon.Progress),
			util.Quantify(len(args), "link", "links"),
		))
		receipt, err := api.New().OfflineAdd(args, lo.Must(cmd.Flags().GetString("to-cid")))
		handleErr(err)
		erase()

		fmt.Printf("%s %s\n", icon.Get(icon.Success), receipt.Message)
	},
}
