package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/papercomputeco/oasis/pkg/eventstream"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleGetGreeting serves getGreeting: {"message": "Hello, <name>!"}.
func (s *Server) handleGetGreeting(c *fiber.Ctx) error {
	name := utils.CopyString(c.Query("name"))
	greeting := s.greeter.Greeting(name)

	s.publishServed(c, eventstream.OperationGetGreeting, s.greeter.ResolveName(name), 1)
	return c.JSON(greeting)
}

// handleGetGreetings serves getGreetings: a randomly sized, numbered list.
func (s *Server) handleGetGreetings(c *fiber.Ctx) error {
	name := utils.CopyString(c.Query("name"))
	greetings := s.greeter.Greetings(name)

	s.publishServed(c, eventstream.OperationGetGreetings, s.greeter.ResolveName(name), len(greetings))
	return c.JSON(greetings)
}

// handleGetEmoji serves getEmoji as plain text.
func (s *Server) handleGetEmoji(c *fiber.Ctx) error {
	emoji := s.greeter.Emoji()

	s.publishServed(c, eventstream.OperationGetEmoji, "", 1)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(emoji)
}

// handleGetEmojis serves getEmojis: a randomly sized list of glyphs.
func (s *Server) handleGetEmojis(c *fiber.Ctx) error {
	emojis := s.greeter.Emojis()

	s.publishServed(c, eventstream.OperationGetEmojis, "", len(emojis))
	return c.JSON(emojis)
}

// handleContract serves the embedded OpenAPI document.
func (s *Server) handleContract(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(Contract())
}

// publishServed emits a served event. Failures are logged and never change
// the response.
func (s *Server) publishServed(c *fiber.Ctx, operation, name string, count int) {
	event := eventstream.NewServedEvent(operation)
	event.Name = name
	event.Count = count
	event.Transport = eventstream.TransportHTTP
	event.HTTPStatus = fiber.StatusOK
	if start, ok := c.Locals(localStart).(time.Time); ok {
		event.DurationMs = time.Since(start).Milliseconds()
	}

	if err := s.publisher.PublishServed(c.UserContext(), event); err != nil {
		s.logger.Warn("failed to publish served event",
			"operation", operation,
			"error", err,
		)
	}
}
