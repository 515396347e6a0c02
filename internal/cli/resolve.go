package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dedalus-labs/context7-helper/internal/api"
	"github.com/dedalus-labs/context7-helper/internal/formatter"
)

func NewResolveCommand(client *api.Context7Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <library-name>",
		Short: "Resolve a library name to Context7-compatible library IDs",
		Long: `Search Context7 for libraries matching a name and print their IDs.

Examples:
  context7-helper resolve react
  context7-helper resolve nextjs --format=json
  context7-helper resolve langchain --format=plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			result := client.ResolveLibraryID(cmd.Context(), args[0])
			if !result.Success {
				formatter.PrintError(result.Error)
				return fmt.Errorf("resolve failed")
			}

			list, ok := result.Data.(api.LibraryList)
			if !ok {
				return fmt.Errorf("unexpected response shape")
			}

			switch format {
			case "json":
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(list)
			case "plain":
				formatter.PrintLibrariesPlain(&list)
			default:
				formatter.PrintLibrariesTable(&list)
			}

			return nil
		},
	}

	return cmd
}
