// Command mcp-server serves the Context7 tools over streamable HTTP.
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/dedalus-labs/context7-helper/internal/server"
)

func main() {
	cfg := server.Config{
		Port:   getEnvInt("PORT", 3012),
		APIKey: os.Getenv("CONTEXT7_API_KEY"),
	}
	if cfg.APIKey == "" {
		log.Println("INFO: CONTEXT7_API_KEY not set; requests are subject to lower rate limits.")
	}

	srv := server.New(cfg)
	log.Printf("Starting Context7 MCP server on %s", srv.Addr())
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
