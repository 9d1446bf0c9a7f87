package models

import (
	"encoding/json"
	"time"
)

// ConversationTurn is one user message / assistant reply pair in the
// append-only chat log. ContextData is the caller's snapshot at send time,
// stored verbatim for audit.
type ConversationTurn struct {
	ID          string          `json:"id"`
	DriverEmail string          `json:"driver_email"`
	UserMessage string          `json:"user_message"`
	AIResponse  string          `json:"ai_response"`
	ContextData json.RawMessage `json:"context_data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
