package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apimcp "github.com/papercomputeco/oasis/api/mcp"
	"github.com/papercomputeco/oasis/pkg/eventstream"
	"github.com/papercomputeco/oasis/pkg/eventstream/nop"
	"github.com/papercomputeco/oasis/pkg/greeter"
)

// Server is the API server for greetings and emoji.
type Server struct {
	config    Config
	greeter   *greeter.Greeter
	publisher eventstream.Publisher
	logger    *slog.Logger
	app       *fiber.App
}

// NewServer creates a new API server.
// The greeter is injected so tests can supply a deterministic random source.
func NewServer(config Config, g *greeter.Greeter, logger *slog.Logger) (*Server, error) {
	if g == nil {
		return nil, errors.New("greeter is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	publisher := config.Publisher
	if publisher == nil {
		publisher = nop.NewPublisher()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	s := &Server{
		config:    config,
		greeter:   g,
		publisher: publisher,
		logger:    logger,
		app:       app,
	}

	app.Use(s.requestLogger)
	app.Use(recover.New())

	app.Get("/ping", s.handlePing)
	app.Get("/openapi.yaml", s.handleContract)

	app.Get("/greeting", s.handleGetGreeting)
	app.Get("/greetings", s.handleGetGreetings)
	app.Get("/emoji", s.handleGetEmoji)
	app.Get("/emojis", s.handleGetEmojis)

	if config.EnableMCP {
		mcpServer, err := apimcp.NewServer(apimcp.Config{
			Greeter:   g,
			Logger:    logger,
			Publisher: publisher,
		})
		if err != nil {
			return nil, fmt.Errorf("creating MCP server: %w", err)
		}
		app.All("/mcp", adaptor.HTTPHandler(mcpServer.Handler()))
	}

	return s, nil
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		"listen", s.config.ListenAddr,
		"mcp", s.config.EnableMCP,
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Handler exposes the fiber app as a net/http handler.
func (s *Server) Handler() http.HandlerFunc {
	return adaptor.FiberApp(s.app)
}
