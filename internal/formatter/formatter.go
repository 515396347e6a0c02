package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/dedalus-labs/context7-helper/internal/api"
)

var (
	idColor     = color.New(color.FgCyan)
	nameColor   = color.New(color.FgGreen, color.Bold)
	countColor  = color.New(color.FgYellow)
	headerColor = color.New(color.FgMagenta, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// Library list formatting
func PrintLibrariesTable(list *api.LibraryList) {
	fmt.Printf("\n%s\n\n", headerColor.Sprint(list.Message))

	if len(list.Results) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Library ID", "Name", "Snippets", "Trust", "Description"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	for _, lib := range list.Results {
		table.Append([]string{
			idColor.Sprint(lib.LibraryID),
			nameColor.Sprint(lib.Name),
			countColor.Sprint(lib.CodeSnippets),
			fmt.Sprintf("%.1f", lib.TrustScore),
			truncate(lib.Description, 60),
		})
	}

	table.Render()
}

func PrintLibrariesPlain(list *api.LibraryList) {
	fmt.Printf("%s\n\n", list.Message)

	for _, lib := range list.Results {
		fmt.Printf("%s  %s (snippets: %d, trust: %.1f)\n",
			lib.LibraryID,
			lib.Name,
			lib.CodeSnippets,
			lib.TrustScore)
		if lib.Description != "" {
			fmt.Printf("    %s\n", lib.Description)
		}
		if len(lib.Versions) > 0 {
			fmt.Printf("    versions: %s\n", strings.Join(lib.Versions, ", "))
		}
	}
}

// Documentation formatting
func PrintDocs(docs *api.LibraryDocs) {
	fmt.Printf("\n%s\n", headerColor.Sprintf("Documentation: %s", docs.LibraryID))
	if docs.Topic != "" {
		fmt.Printf("Topic: %s\n", docs.Topic)
	}
	fmt.Printf("\n%s\n", docs.Documentation)
}

func PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorColor.Sprint("Error:"), msg)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
