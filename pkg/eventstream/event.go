// Package eventstream defines the transport-neutral events the API server
// emits after answering a request.
package eventstream

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeResponseServed is emitted after an operation produced a response.
	EventTypeResponseServed = "oasis.response.served"
)

// Operation names, matching the API contract's operation IDs.
const (
	OperationGetGreeting  = "getGreeting"
	OperationGetGreetings = "getGreetings"
	OperationGetEmoji     = "getEmoji"
	OperationGetEmojis    = "getEmojis"
)

// Transports an operation can be served over.
const (
	TransportHTTP = "http"
	TransportMCP  = "mcp"
)

// ServedEvent describes one answered request.
type ServedEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EmittedAt     time.Time `json:"emitted_at"`
	Operation     string    `json:"operation"`
	Transport     string    `json:"transport"`
	// Name is the resolved name; empty for emoji operations.
	Name       string `json:"name,omitempty"`
	Count      int    `json:"count"`
	// HTTPStatus is zero for operations served as MCP tools.
	HTTPStatus int    `json:"http_status,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// NewServedEvent stamps a new event with a fresh ID and the current time.
func NewServedEvent(operation string) *ServedEvent {
	return &ServedEvent{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeResponseServed,
		EventID:       "evt_" + uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		Operation:     operation,
	}
}
