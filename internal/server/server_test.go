package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestHealth(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestHostCheckDisabledByDefault(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	req.Host = "evil.example.com"
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code == http.StatusForbidden {
		t.Fatal("host check should be a pass-through when protection is disabled")
	}
}

func TestHostCheckEnabled(t *testing.T) {
	s := New(Config{EnableDNSRebindingProtection: true})

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	req.Host = "evil.example.com"
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for mismatched Host, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/mcp", nil)
	req.Host = "localhost:3012"
	rr = httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code == http.StatusForbidden {
		t.Fatalf("expected allowed Host to pass, got %d", rr.Code)
	}
}

func TestDefaultAddr(t *testing.T) {
	s := New(Config{})
	if s.Addr() != ":3012" {
		t.Fatalf("addr = %q, want :3012", s.Addr())
	}
}

// Drives both tools through the streamable HTTP transport against a fake
// Context7 upstream.
func TestToolsEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/search" {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"results":[{"id":"/facebook/react","name":"React","description":"UI library","codeSnippets":42,"trustScore":9.8,"versions":["18.0.0"]}]}`)
			return
		}
		fmt.Fprint(w, "react hooks documentation")
	}))
	defer upstream.Close()

	s := New(Config{Context7BaseURL: upstream.URL})
	web := httptest.NewServer(s.Router())
	defer web.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, mcp.NewStreamableClientTransport(web.URL+"/mcp", nil))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools failed: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	if !names["resolve_library_id"] || !names["get_library_docs"] {
		t.Fatalf("missing tools, got %v", names)
	}

	resolve, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "resolve_library_id",
		Arguments: map[string]any{"library_name": "react"},
	})
	if err != nil {
		t.Fatalf("resolve call failed: %v", err)
	}
	if resolve.IsError {
		t.Fatalf("resolve returned error: %v", resolve.Content)
	}
	if text := contentText(resolve); !strings.Contains(text, "Found 1 matching libraries.") {
		t.Errorf("resolve text = %q", text)
	}

	docs, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_library_docs",
		Arguments: map[string]any{"library_id": "/facebook/react", "topic": "hooks", "tokens": 5000},
	})
	if err != nil {
		t.Fatalf("docs call failed: %v", err)
	}
	if docs.IsError {
		t.Fatalf("docs returned error: %v", docs.Content)
	}
	if text := contentText(docs); !strings.Contains(text, "react hooks documentation") {
		t.Errorf("docs text = %q", text)
	}
}

func TestToolErrorSurfacesAsResult(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	s := New(Config{Context7BaseURL: upstream.URL})
	web := httptest.NewServer(s.Router())
	defer web.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, mcp.NewStreamableClientTransport(web.URL+"/mcp", nil))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "resolve_library_id",
		Arguments: map[string]any{"library_name": "react"},
	})
	if err != nil {
		t.Fatalf("call should not fail at the protocol level: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError result")
	}
	if text := contentText(result); !strings.Contains(text, "Rate limited") {
		t.Errorf("text = %q", text)
	}
}

func contentText(result *mcp.CallToolResult) string {
	var out string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			out += text.Text
		}
	}
	return out
}
