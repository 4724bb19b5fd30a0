// Package api provides the HTTP API server for greetings and emoji.
package api

import "github.com/papercomputeco/oasis/pkg/eventstream"

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// EnableMCP mounts the MCP tools under /mcp
	EnableMCP bool

	// Publisher receives a served event per answered operation.
	// Optional; nil disables events.
	Publisher eventstream.Publisher
}
