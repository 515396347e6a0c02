// Command mcp-client is a sample client for exercising the Context7 MCP
// server end to end.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverURL = "http://localhost:3012/mcp"

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name: "context7-test-client",
	}, nil)

	session, err := client.Connect(ctx, mcp.NewStreamableClientTransport(serverURL, nil))
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}
	fmt.Printf("Available tools (%d):\n\n", len(tools.Tools))
	for _, t := range tools.Tools {
		fmt.Printf("  %s\n", t.Name)
		if t.Description != "" {
			fmt.Printf("    %s\n", truncate(t.Description, 80))
		}
		fmt.Println()
	}

	fmt.Println("--- resolve_library_id ---")
	printResult(callTool(ctx, session, "resolve_library_id", map[string]any{
		"library_name": "react",
	}))

	fmt.Println("--- get_library_docs ---")
	printResult(callTool(ctx, session, "get_library_docs", map[string]any{
		"library_id": "/facebook/react",
		"topic":      "hooks",
		"tokens":     5000,
	}))
}

func callTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Fatalf("call %s failed: %v", name, err)
	}
	return result
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(truncate(text.Text, 1000))
		}
	}
	fmt.Println()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
