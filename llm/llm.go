// Package llm defines the oracle contract consumed by agents: a synchronous
// text-in/text-out query with no latency, cost or determinism guarantees.
// Provider adapters live in the subpackages (openai, anthropic).
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Oracle is the minimal interface an agent needs to turn a prompt into a
// free-text decision. Implementations block until the provider answers or the
// underlying transport errors; callers that need a deadline supply one via ctx.
type Oracle interface {
	Query(ctx context.Context, prompt string) (string, error)
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\n(.*?)\n```")

// CleanReply strips markdown code fences and stray backticks from a raw
// oracle reply so the directive parser sees only the payload.
func CleanReply(reply string) string {
	cleaned := fenceRe.ReplaceAllString(reply, "$1")
	cleaned = strings.ReplaceAll(cleaned, "`", "")
	return strings.TrimSpace(cleaned)
}

// MockOracle is a lightweight in-memory Oracle useful for tests and examples.
// Canned replies are matched by substring against the prompt; when nothing
// matches, Default is returned (or an error when Err is set).
type MockOracle struct {
	replies []mockReply
	// Default is returned when no canned reply matches.
	Default string
	// Err, when set, is returned from every Query call.
	Err error
	// Prompts records every prompt seen, in order.
	Prompts []string
}

type mockReply struct {
	contains string
	reply    string
}

// NewMockOracle constructs a MockOracle with a generic default reply.
func NewMockOracle() *MockOracle {
	return &MockOracle{Default: `{"action": "respond_to_user", "args": "OK"}`}
}

// AddReply registers a canned reply returned when the prompt contains the
// given substring. Earlier registrations win.
func (m *MockOracle) AddReply(contains, reply string) {
	m.replies = append(m.replies, mockReply{contains: contains, reply: reply})
}

// Query implements Oracle.
func (m *MockOracle) Query(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	for _, r := range m.replies {
		if strings.Contains(prompt, r.contains) {
			return r.reply, nil
		}
	}
	if m.Default != "" {
		return m.Default, nil
	}
	return "", fmt.Errorf("no canned reply for prompt")
}
