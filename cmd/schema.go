// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/media"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("resources", "r", false, "Generate the JSON Schema for resource listings")
	schemaCmd.Flags().BoolP("detail", "d", false, "Generate the JSON Schema for title details")
	schemaCmd.Flags().BoolP("subscriptions", "u", false, "Generate the JSON Schema for the subscription list")
	schemaCmd.MarkFlagsMutuallyExclusive("resources", "detail", "subscriptions")
}

// schemaCmd generates JSON schemas for the structured --json outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the --json command outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "meta", "detail", "season", "episode", "resource", "subscription":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("resources")):
			schema = reflector.Reflect([]*media.Resource{})
		case lo.Must(cmd.Flags().GetBool("detail")):
			schema = reflector.Reflect(&media.Detail{})
		case lo.Must(cmd.Flags().GetBool("subscriptions")):
			schema = reflector.Reflect([]api.Subscription{})
		default:
			schema = reflector.Reflect(&media.SearchResult{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
