package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papercomputeco/oasis/pkg/eventstream"
	"github.com/papercomputeco/oasis/pkg/greeter"
)

var (
	greetingToolName    = "greeting"
	greetingDescription = "Greet someone by name. Without a name the default name is used."

	greetingsToolName    = "greetings"
	greetingsDescription = "Return a random number of numbered greetings for a name."

	emojiToolName    = "emoji"
	emojiDescription = "Return one random emoji from the configured glyph set."

	emojisToolName    = "emojis"
	emojisDescription = "Return a random number of random emoji from the configured glyph set."
)

// GreetingInput represents the input arguments for the greeting tools.
type GreetingInput struct {
	Name string `json:"name,omitempty" jsonschema:"the name to greet (default: the configured default name)"`
}

// GreetingOutput is the result of the greeting tool.
type GreetingOutput struct {
	Message string `json:"message"`
}

// GreetingsOutput is the result of the greetings tool.
type GreetingsOutput struct {
	Greetings []greeter.Greeting `json:"greetings"`
	Count     int                `json:"count"`
}

// EmojiInput is empty; the emoji tools take no arguments.
type EmojiInput struct{}

// EmojiOutput is the result of the emoji tool.
type EmojiOutput struct {
	Emoji string `json:"emoji"`
}

// EmojisOutput is the result of the emojis tool.
type EmojisOutput struct {
	Emojis []string `json:"emojis"`
	Count  int      `json:"count"`
}

func (s *Server) handleGreeting(ctx context.Context, _ *mcp.CallToolRequest, input GreetingInput) (*mcp.CallToolResult, GreetingOutput, error) {
	start := time.Now()
	greeting := s.config.Greeter.Greeting(input.Name)
	s.config.Logger.Debug("MCP greeting request", "name", input.Name)

	s.publishServed(ctx, start, eventstream.OperationGetGreeting, s.config.Greeter.ResolveName(input.Name), 1)
	return nil, GreetingOutput{Message: greeting.Message}, nil
}

func (s *Server) handleGreetings(ctx context.Context, _ *mcp.CallToolRequest, input GreetingInput) (*mcp.CallToolResult, GreetingsOutput, error) {
	start := time.Now()
	greetings := s.config.Greeter.Greetings(input.Name)
	s.config.Logger.Debug("MCP greetings request", "name", input.Name, "count", len(greetings))

	s.publishServed(ctx, start, eventstream.OperationGetGreetings, s.config.Greeter.ResolveName(input.Name), len(greetings))
	return nil, GreetingsOutput{Greetings: greetings, Count: len(greetings)}, nil
}

func (s *Server) handleEmoji(ctx context.Context, _ *mcp.CallToolRequest, _ EmojiInput) (*mcp.CallToolResult, EmojiOutput, error) {
	start := time.Now()
	emoji := s.config.Greeter.Emoji()

	s.publishServed(ctx, start, eventstream.OperationGetEmoji, "", 1)
	return nil, EmojiOutput{Emoji: emoji}, nil
}

func (s *Server) handleEmojis(ctx context.Context, _ *mcp.CallToolRequest, _ EmojiInput) (*mcp.CallToolResult, EmojisOutput, error) {
	start := time.Now()
	emojis := s.config.Greeter.Emojis()

	s.publishServed(ctx, start, eventstream.OperationGetEmojis, "", len(emojis))
	return nil, EmojisOutput{Emojis: emojis, Count: len(emojis)}, nil
}

// publishServed emits a served event for a tool call. Failures are logged
// and never fail the call.
func (s *Server) publishServed(ctx context.Context, start time.Time, operation, name string, count int) {
	event := eventstream.NewServedEvent(operation)
	event.Transport = eventstream.TransportMCP
	event.Name = name
	event.Count = count
	event.DurationMs = time.Since(start).Milliseconds()

	if err := s.config.Publisher.PublishServed(ctx, event); err != nil {
		s.config.Logger.Warn("failed to publish served event",
			"operation", operation,
			"transport", eventstream.TransportMCP,
			"error", err,
		)
	}
}
