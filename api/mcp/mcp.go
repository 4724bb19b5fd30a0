// Package mcp exposes the greeting and emoji operations as MCP
// (Model Context Protocol) tools.
package mcp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papercomputeco/oasis/pkg/eventstream"
	"github.com/papercomputeco/oasis/pkg/eventstream/nop"
	"github.com/papercomputeco/oasis/pkg/greeter"
	"github.com/papercomputeco/oasis/pkg/utils"
)

type Config struct {
	// Greeter produces the tool results
	Greeter *greeter.Greeter

	// Logger is the configured slog logger
	Logger *slog.Logger

	// Publisher receives a served event per tool call.
	// Optional; nil disables events.
	Publisher eventstream.Publisher
}

type Server struct {
	config    Config
	mcpServer *mcp.Server
	handler   *mcp.StreamableHTTPHandler
}

// NewServer creates a new MCP server with the greeting and emoji tools.
func NewServer(c Config) (*Server, error) {
	if c.Greeter == nil {
		return nil, errors.New("greeter is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if c.Publisher == nil {
		c.Publisher = nop.NewPublisher()
	}

	s := &Server{
		config: c,
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "oasis",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        greetingToolName,
		Description: greetingDescription,
	}, s.handleGreeting)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        greetingsToolName,
		Description: greetingsDescription,
	}, s.handleGreetings)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        emojiToolName,
		Description: emojiDescription,
	}, s.handleEmoji)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        emojisToolName,
		Description: emojisDescription,
	}, s.handleEmojis)

	s.mcpServer = mcpServer

	// Create a streamable HTTP net/http handler for stateless operations
	s.handler = mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server {
			return mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless: true,
		},
	)

	return s, nil
}

// Handler returns the HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// MCPServer returns the underlying MCP server, for in-process transports.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}
