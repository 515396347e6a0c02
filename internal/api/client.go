package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://context7.com/api"
	apiKeyHeader   = "X-Context7-Api-Key"

	defaultTimeout   = 60 * time.Second
	defaultMinTokens = 10000
)

// Config holds the Context7 client settings. The zero value is usable:
// every field falls back to its documented default in NewClient.
type Config struct {
	// BaseURL of the Context7 API. Default: https://context7.com/api
	BaseURL string
	// APIKey is optional. When set it is forwarded on every request as the
	// X-Context7-Api-Key header. Read it from CONTEXT7_API_KEY at startup
	// and pass it in here; the client never consults the environment.
	APIKey string
	// Timeout for a single request. Default: 60s.
	Timeout time.Duration
	// MinTokens is the floor applied to the tokens parameter of
	// GetLibraryDocs. The upstream API rejects smaller values, so requests
	// below the floor are raised to it. Default: 10000.
	MinTokens int
}

type Context7Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	minTokens  int
}

func NewClient(cfg Config) *Context7Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MinTokens <= 0 {
		cfg.MinTokens = defaultMinTokens
	}
	return &Context7Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		minTokens: cfg.MinTokens,
	}
}

// Result is the uniform envelope returned by every operation. Exactly one
// of Data/Error is meaningful depending on Success; Data may be absent even
// on success.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func failure(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// get performs a single GET against the API and normalizes the outcome.
// Errors never escape as Go errors: transport failures and error statuses
// all come back as a Result with Success=false. The raw body is returned
// alongside for callers that reshape individual JSON fields.
func (c *Context7Client) get(ctx context.Context, path string, params url.Values) (Result, []byte) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failure("%v", err), nil
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure("%v", err), nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return failure("Rate limited. Please try again later."), nil
	case http.StatusUnauthorized:
		return failure("Unauthorized. Please check your API key."), nil
	case http.StatusNotFound:
		return failure("Library not found."), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failure("request failed: %s", resp.Status), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("%v", err), nil
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var data any
		if err := json.Unmarshal(body, &data); err != nil {
			return failure("invalid JSON response: %v", err), nil
		}
		return Result{Success: true, Data: data}, body
	}

	return Result{Success: true, Data: string(body)}, body
}

// Library is the simplified descriptor produced for each search hit.
// Fields missing upstream default to "", 0, or an empty list.
type Library struct {
	LibraryID    string   `json:"library_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CodeSnippets int      `json:"code_snippets"`
	TrustScore   float64  `json:"trust_score"`
	Versions     []string `json:"versions"`
}

type LibraryList struct {
	Message string    `json:"message"`
	Results []Library `json:"results"`
}

const maxSearchResults = 10

// ResolveLibraryID searches Context7 for libraries matching libraryName and
// reshapes the hits into Library descriptors, keeping at most the first 10
// in upstream order. Zero matches is a successful call with an empty list,
// not an error.
func (c *Context7Client) ResolveLibraryID(ctx context.Context, libraryName string) Result {
	result, body := c.get(ctx, "/v1/search", url.Values{"query": {libraryName}})
	if !result.Success || result.Data == nil {
		return result
	}

	hits := gjson.GetBytes(body, "results").Array()
	if len(hits) == 0 {
		result.Data = LibraryList{
			Message: "No libraries found matching your query.",
			Results: []Library{},
		}
		return result
	}

	formatted := []Library{}
	for _, hit := range hits {
		if len(formatted) >= maxSearchResults {
			break
		}
		versions := []string{}
		for _, v := range hit.Get("versions").Array() {
			versions = append(versions, v.String())
		}
		formatted = append(formatted, Library{
			LibraryID:    hit.Get("id").String(),
			Name:         hit.Get("name").String(),
			Description:  hit.Get("description").String(),
			CodeSnippets: int(hit.Get("codeSnippets").Int()),
			TrustScore:   hit.Get("trustScore").Float(),
			Versions:     versions,
		})
	}

	result.Data = LibraryList{
		Message: fmt.Sprintf("Found %d matching libraries.", len(formatted)),
		Results: formatted,
	}
	return result
}
