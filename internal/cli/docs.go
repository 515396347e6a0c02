package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dedalus-labs/context7-helper/internal/api"
	"github.com/dedalus-labs/context7-helper/internal/formatter"
)

func NewDocsCommand(client *api.Context7Client) *cobra.Command {
	var topic string
	var tokens int

	cmd := &cobra.Command{
		Use:   "docs <library-id>",
		Short: "Fetch documentation for a Context7 library ID",
		Long: `Fetch up-to-date documentation for a library. Use 'resolve' first to find
the library ID unless you already know it.

Examples:
  context7-helper docs /facebook/react
  context7-helper docs /facebook/react --topic=hooks
  context7-helper docs /vercel/next.js --topic=routing --tokens=20000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			result := client.GetLibraryDocs(cmd.Context(), args[0], topic, tokens)
			if !result.Success {
				formatter.PrintError(result.Error)
				return fmt.Errorf("docs fetch failed")
			}

			docs, ok := result.Data.(api.LibraryDocs)
			if !ok {
				return fmt.Errorf("unexpected response shape")
			}

			switch format {
			case "json":
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(docs)
			default:
				formatter.PrintDocs(&docs)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Focus documentation on a topic (e.g., 'hooks', 'routing')")
	cmd.Flags().IntVarP(&tokens, "tokens", "n", 10000, "Maximum tokens of documentation to retrieve")

	return cmd
}
