// Package memory implements the bounded conversation memory owned by each
// agent: an ordered FIFO of turn records capped at a fixed size.
package memory

import (
	"strings"

	"github.com/daybrief-ai/daybrief/core"
)

// DefaultMaxTurns is the conversation memory bound.
const DefaultMaxTurns = 10

// Conversation is an ordered sequence of turn records with FIFO eviction once
// the bound is exceeded. It is owned exclusively by one agent instance and
// mutated only on that agent's Process calls, so it carries no lock.
type Conversation struct {
	turns    []core.Turn
	maxTurns int
}

// NewConversation constructs an empty conversation memory. A non-positive
// bound falls back to DefaultMaxTurns.
func NewConversation(maxTurns int) *Conversation {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Conversation{maxTurns: maxTurns}
}

// Append records a turn, evicting the oldest record once the bound is exceeded.
func (c *Conversation) Append(role core.Role, text string) {
	c.turns = append(c.turns, core.Turn{Role: role, Text: text})
	if len(c.turns) > c.maxTurns {
		c.turns = c.turns[len(c.turns)-c.maxTurns:]
	}
}

// Len returns the number of retained turns.
func (c *Conversation) Len() int { return len(c.turns) }

// Turns returns a defensive copy of the retained turns in order.
func (c *Conversation) Turns() []core.Turn {
	out := make([]core.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Window renders the retained turns oldest to newest as prompt context lines.
func (c *Conversation) Window() string {
	var b strings.Builder
	for i, t := range c.turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch t.Role {
		case core.RoleUser:
			b.WriteString("User: ")
		case core.RoleAgent:
			b.WriteString("Agent: ")
		default:
			b.WriteString(string(t.Role) + ": ")
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// Clear drops all retained turns.
func (c *Conversation) Clear() { c.turns = nil }
