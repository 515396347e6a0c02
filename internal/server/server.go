// Package server wires the Context7 tools into an MCP server reachable over
// streamable HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dedalus-labs/context7-helper/internal/api"
)

const (
	serverName  = "context7-mcp"
	defaultPort = 3012
)

// Config contains the server settings.
type Config struct {
	// Port to listen on. Default: 3012.
	Port int
	// APIKey is forwarded to Context7 on every upstream request.
	APIKey string
	// Context7BaseURL overrides the upstream API base URL. Empty means the
	// production endpoint.
	Context7BaseURL string
	// EnableDNSRebindingProtection turns on Host-header validation for the
	// /mcp endpoint. It is off by default, matching the upstream service
	// this adapter fronts; keep it off unless the listener is exposed
	// beyond localhost.
	EnableDNSRebindingProtection bool
	// AllowedHosts are the Host header values accepted when protection is
	// enabled. Defaults to localhost and 127.0.0.1 on the configured port.
	AllowedHosts []string
}

// Server owns the MCP server, the Context7 client, and the HTTP router.
type Server struct {
	cfg    Config
	mcp    *mcp.Server
	client *api.Context7Client
	router *chi.Mux
}

func New(cfg Config) *Server {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if len(cfg.AllowedHosts) == 0 {
		cfg.AllowedHosts = []string{
			fmt.Sprintf("localhost:%d", cfg.Port),
			fmt.Sprintf("127.0.0.1:%d", cfg.Port),
		}
	}

	s := &Server{
		cfg: cfg,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name: serverName,
		}, &mcp.ServerOptions{
			Instructions: "Look up library documentation via the Context7 API",
		}),
		client: api.NewClient(api.Config{
			BaseURL: cfg.Context7BaseURL,
			APIKey:  cfg.APIKey,
		}),
		router: chi.NewRouter(),
	}

	s.registerTools()

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
	s.router.Handle("/mcp", s.hostCheck(handler))

	return s
}

// Router exposes the root HTTP handler.
func (s *Server) Router() http.Handler { return s.router }

// Addr returns the listen address derived from the configured port.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// ListenAndServe blocks serving the router on the configured port.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Addr(), s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// hostCheck guards against DNS rebinding by validating the Host header.
// With protection disabled it is a pass-through.
func (s *Server) hostCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.EnableDNSRebindingProtection {
			next.ServeHTTP(w, r)
			return
		}
		for _, allowed := range s.cfg.AllowedHosts {
			if r.Host == allowed || hostOnly(r.Host) == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}
		http.Error(w, "invalid Host header", http.StatusForbidden)
	})
}

func hostOnly(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return hostport
}
