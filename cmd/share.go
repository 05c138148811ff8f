// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/auth"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/log"
	"github.com/wangjh9712/fullbr115/share"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

func init() {
	rootCmd.AddCommand(shareCmd)

	shareCmd.PersistentFlags().StringP("password", "p", "", "Share passcode, resolved from the keyring when omitted")
	shareCmd.PersistentFlags().Bool("remember", false, "Store the passcode in the system keyring once it worked")
}

// shareCmd is the parent for 115 share link interaction.
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Browse 115 share links and save their entries to your drive",
}

// openShare builds the loaded tree for a link. The passcode comes from
// the flag or the keyring; when neither works and the server refuses the
// listing, the user is prompted once and the listing retried. destCID
// routes later saves, it plays no part in listing.
func openShare(cmd *cobra.Command, link, destCID string, notifier share.Notifier) *share.Tree {
	passcode := lo.Must(cmd.Flags().GetString("password"))
	fromFlag := passcode != ""
	if !fromFlag {
		if stored, err := auth.Passcode(link); err == nil {
			passcode = stored
		}
	}

	client := api.New()

	load := func() (*share.Tree, error) {
		session := client.Share(link, passcode)
		session.DestCID = destCID

		tree := share.NewTree(session, notifier)
		erase := util.PrintErasable(fmt.Sprintf("%s Listing share...", icon.Get(icon.Progress)))
		err := tree.Load()
		erase()
		return tree, err
	}

	tree, err := load()

	var refusal *api.AppError
	if errors.As(err, &refusal) && !fromFlag {
		fmt.Printf("%s %s\n", icon.Get(icon.Fail), refusal)

		input := survey.Input{Message: "Share passcode:"}
		handleErr(survey.AskOne(&input, &passcode))
		if passcode == "" {
			handleErr(err)
		}

		tree, err = load()
	}
	handleErr(err)

	rememberPasscode(cmd, link, passcode)
	return tree
}

// rememberPasscode stores a passcode that just proved itself, when asked
// to by the flag or the config.
func rememberPasscode(cmd *cobra.Command, link, passcode string) {
	if passcode == "" {
		return
	}
	if !lo.Must(cmd.Flags().GetBool("remember")) && !viper.GetBool(key.DriveRememberPasscodes) {
		return
	}

	if err := auth.SetPasscode(link, passcode); err != nil {
		log.Warnf("could not store the passcode in the keyring: %v", err)
	}
}

func init() {
	shareCmd.AddCommand(shareLsCmd)

	shareLsCmd.Flags().IntP("depth", "d", 1, "How many directory levels to list")
	shareLsCmd.Flags().BoolP("json", "j", false, "Print the entries as JSON")
}

// shareLsCmd lists the contents of a share link. A wrapper directory that
// is the only top-level entry is skipped over, so the listing starts at
// the actual content.
var shareLsCmd = &cobra.Command{
	Use:     "ls <link>",
	Short:   "List the contents of a share link",
	Example: "  fullbr115 share ls https://115.com/s/swz123abc\n  fullbr115 share ls https://115.com/s/swz123abc --depth 2",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tree := openShare(cmd, args[0], "", nil)
		handleErr(tree.ExpandTo(lo.Must(cmd.Flags().GetInt("depth"))))

		if lo.Must(cmd.Flags().GetBool("json")) {
			entries := make([]api.ShareFile, 0)
			tree.Walk(func(node *share.Node, _ int) {
				entries = append(entries, node.ShareFile)
			})
			handleErr(printJSON(entries))
			return
		}

		if len(tree.Entries()) == 0 {
			fmt.Printf("%s the share is empty\n", icon.Get(icon.Search))
			return
		}

		tree.Walk(func(node *share.Node, depth int) {
			indent := strings.Repeat("  ", depth-1)
			fmt.Printf("%s%s  %s\n", indent, entryLine(&node.ShareFile), style.Faint(node.ID))
		})
	},
}

// saveNotifier prints the two phases of a save to the terminal.
type saveNotifier struct {
	erase func()
}

func (n *saveNotifier) SaveSubmitted(node *share.Node) {
	n.erase = util.PrintErasable(fmt.Sprintf("%s Saving %s...", icon.Get(icon.Progress), node.Name))
}

func (n *saveNotifier) SaveResolved(node *share.Node, receipt *api.Receipt, err error) {
	if n.erase != nil {
		n.erase()
		n.erase = nil
	}

	if err != nil {
		fmt.Printf("%s %s: %s\n", icon.Get(icon.Fail), node.Name, err)
		return
	}

	fmt.Printf("%s %s %s\n", icon.Get(icon.Success), node.Name, style.Faint(receipt.Message))
}

func init() {
	shareCmd.AddCommand(shareSaveCmd)

	shareSaveCmd.Flags().StringSliceP("id", "i", nil, "File ids to save, as shown by share ls")
	lo.Must0(shareSaveCmd.MarkFlagRequired("id"))
	shareSaveCmd.Flags().IntP("depth", "d", 3, "How deep to look for the requested ids")
	shareSaveCmd.Flags().String("folder-template", "", "Directory name template for saved .iso files, {name} expands to the file stem")
	shareSaveCmd.Flags().String("to-cid", "", "Drive directory id to save into, as shown by drive ls")
}

// shareSaveCmd saves selected entries of a share link to the user's
// drive. Disc images get their own directory named after the template.
var shareSaveCmd = &cobra.Command{
	Use:     "save <link>",
	Short:   "Save entries of a share link to your drive",
	Example: "  fullbr115 share save https://115.com/s/swz123abc --id 2593706461875482622",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		depth := lo.Must(cmd.Flags().GetInt("depth"))

		tree := openShare(cmd, args[0], lo.Must(cmd.Flags().GetString("to-cid")), &saveNotifier{})
		handleErr(tree.ExpandTo(depth))

		ids := lo.Must(cmd.Flags().GetStringSlice("id"))
		wanted := lo.SliceToMap(ids, func(id string) (string, *share.Node) { return id, nil })
		tree.Walk(func(node *share.Node, _ int) {
			if _, ok := wanted[node.ID]; ok {
				wanted[node.ID] = node
			}
		})

		template := lo.Must(cmd.Flags().GetString("folder-template"))
		if template == "" {
			template = viper.GetString(key.DriveFolderTemplate)
		}

		var failed bool
		for _, id := range ids {
			node := wanted[id]
			if node == nil {
				fmt.Printf("%s id %s not found within depth %d, raise --depth\n", icon.Get(icon.Fail), id, depth)
				failed = true
				continue
			}

			if _, err := tree.Save(node, template); err != nil {
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	shareCmd.AddCommand(shareForgetCmd)
}

// shareForgetCmd drops a stored passcode from the system keyring.
var shareForgetCmd = &cobra.Command{
	Use:   "forget <link>",
	Short: "Remove the stored passcode for a share link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeletePasscode(args[0]))
		fmt.Printf("%s passcode removed\n", icon.Get(icon.Success))
	},
}
