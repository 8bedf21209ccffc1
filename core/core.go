// Package core defines the shared leaf types of the assistant: conversation
// turn records, the error taxonomy, and the time-expiring shared context that
// carries ambient slots (such as the active location) between turns.
package core

import "github.com/google/uuid"

// Role tags a conversation turn with its author.
type Role string

const (
	// RoleUser marks a turn authored by the end user.
	RoleUser Role = "user"
	// RoleAgent marks a turn authored by an agent (raw oracle text included).
	RoleAgent Role = "agent"
)

// Turn is a single record in a conversation memory: who said what.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// NewID generates a new unique identifier for sessions and turns.
func NewID() string { return uuid.NewString() }
