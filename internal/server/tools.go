package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dedalus-labs/context7-helper/internal/api"
)

func (s *Server) registerTools() {
	// Resolve library ID
	type ResolveArgs struct {
		LibraryName string `json:"library_name" mcp:"library name to search for (e.g., 'react', 'nextjs', 'langchain')"`
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "resolve_library_id",
		Description: "Resolves a package/product name to a Context7-compatible library ID. " +
			"You MUST call this before 'get_library_docs' to obtain a valid library ID " +
			"UNLESS the user explicitly provides a library ID in the format '/org/project'. " +
			"Returns matching libraries with name, description, code snippet counts, and trust scores.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ResolveArgs]) (*mcp.CallToolResultFor[api.Result], error) {
		result := s.client.ResolveLibraryID(ctx, params.Arguments.LibraryName)

		text := resolveSummary(params.Arguments.LibraryName, result)
		return &mcp.CallToolResultFor[api.Result]{
			Content:           []mcp.Content{&mcp.TextContent{Text: text}},
			StructuredContent: result,
			IsError:           !result.Success,
		}, nil
	})

	// Get library docs
	type DocsArgs struct {
		LibraryID string `json:"library_id" mcp:"Context7-compatible library ID (e.g., '/mongodb/docs', '/vercel/next.js')"`
		Topic     string `json:"topic,omitempty" mcp:"optional topic to focus documentation on (e.g., 'hooks', 'routing')"`
		Tokens    int    `json:"tokens,omitempty" mcp:"maximum tokens of documentation to retrieve (default 10000)"`
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_library_docs",
		Description: "Fetches up-to-date documentation for a library using its Context7-compatible library ID. " +
			"You must call 'resolve_library_id' first to obtain the ID, UNLESS the user explicitly " +
			"provides a library ID in the format '/org/project' or '/org/project/version'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[DocsArgs]) (*mcp.CallToolResultFor[api.Result], error) {
		result := s.client.GetLibraryDocs(ctx, params.Arguments.LibraryID, params.Arguments.Topic, params.Arguments.Tokens)

		text := docsSummary(params.Arguments.LibraryID, result)
		return &mcp.CallToolResultFor[api.Result]{
			Content:           []mcp.Content{&mcp.TextContent{Text: text}},
			StructuredContent: result,
			IsError:           !result.Success,
		}, nil
	})
}

func resolveSummary(libraryName string, result api.Result) string {
	if !result.Success {
		return fmt.Sprintf("Error resolving library ID: %s", result.Error)
	}
	list, ok := result.Data.(api.LibraryList)
	if !ok {
		return fmt.Sprintf("Resolved libraries for query: %s", libraryName)
	}
	text := list.Message
	for _, lib := range list.Results {
		text += fmt.Sprintf("\n%s (%s) - %d snippets, trust %.1f", lib.LibraryID, lib.Name, lib.CodeSnippets, lib.TrustScore)
	}
	return text
}

func docsSummary(libraryID string, result api.Result) string {
	if !result.Success {
		return fmt.Sprintf("Error fetching documentation: %s", result.Error)
	}
	docs, ok := result.Data.(api.LibraryDocs)
	if !ok {
		return fmt.Sprintf("Documentation for %s", libraryID)
	}
	return docs.Documentation
}
