package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/papercomputeco/oasis/pkg/utils"
)

// maxLoggedQuery caps the query string written to request logs.
const maxLoggedQuery = 128

// maxRequestIDLen caps a client-supplied X-Request-ID. Longer values are
// replaced with a generated one.
const maxRequestIDLen = 128

// localStart is the fiber.Ctx local holding the request start time.
const localStart = "oasis.start"

// requestLogger tags each request with an X-Request-ID and logs it once the
// chain, including error rendering, has finished.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	c.Locals(localStart, start)

	requestID := c.Get(fiber.HeaderXRequestID)
	if !validRequestID(requestID) {
		requestID = uuid.NewString()
	}
	c.Set(fiber.HeaderXRequestID, requestID)

	if err := c.Next(); err != nil {
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Debug("handled request",
		"method", c.Method(),
		"path", c.Path(),
		"query", utils.Truncate(string(c.Request().URI().QueryString()), maxLoggedQuery),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
		"request_id", requestID,
	)
	return nil
}

// validRequestID reports whether a client-supplied request ID is safe to
// echo and log: non-empty, bounded, and visible ASCII only.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// errorHandler renders framework errors (unknown route, wrong method,
// recovered panic) as an ErrorResponse.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}

		return c.Status(code).JSON(ErrorResponse{Error: message})
	}
}
