package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Sentinel bodies the upstream API returns for library IDs it knows but has
// no documentation for.
var noContentSentinels = []string{
	"No content available",
	"No context data available",
}

const docsNotFoundGuidance = "Documentation not found. This might happen because you used an invalid " +
	"library ID. Use 'resolve_library_id' to get a valid ID."

// LibraryDocs is the payload returned by a successful GetLibraryDocs call.
type LibraryDocs struct {
	LibraryID     string `json:"library_id"`
	Topic         string `json:"topic,omitempty"`
	Documentation string `json:"documentation"`
}

// GetLibraryDocs fetches documentation for a Context7-compatible library ID
// such as "/vercel/next.js". A leading "/" on the ID is stripped before
// building the request path. tokens below the configured floor are raised
// to it; the upstream API enforces the same minimum, so the caller's
// smaller value would be ignored anyway.
func (c *Context7Client) GetLibraryDocs(ctx context.Context, libraryID, topic string, tokens int) Result {
	libraryID = strings.TrimPrefix(libraryID, "/")

	if tokens < c.minTokens {
		tokens = c.minTokens
	}
	params := url.Values{
		"tokens": {strconv.Itoa(tokens)},
		"type":   {"txt"},
	}
	if topic != "" {
		params.Set("topic", topic)
	}

	result, body := c.get(ctx, "/v1/"+libraryID, params)
	if !result.Success {
		return result
	}

	text := string(body)
	if text == "" || isNoContent(text) {
		return failure(docsNotFoundGuidance)
	}

	result.Data = LibraryDocs{
		LibraryID:     "/" + libraryID,
		Topic:         topic,
		Documentation: text,
	}
	return result
}

func isNoContent(body string) bool {
	for _, s := range noContentSentinels {
		if body == s {
			return true
		}
	}
	return false
}
