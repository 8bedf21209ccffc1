package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy_MessagesCarryComponent(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"agent", NewAgentError("Weather Agent", "oracle query failed", nil), "agent error [Weather Agent]: oracle query failed"},
		{"tool", NewToolError("Time Agent", "timezone lookup failed", nil), "tool error [Time Agent]: timezone lookup failed"},
		{"location", NewLocationError("Atlantis", "no matching place", nil), "location error [Atlantis]: no matching place"},
		{"oracle", NewOracleError("openai", "no choices returned", nil), "oracle error [openai]: no choices returned"},
		{"orchestrator", NewOrchestratorError("turn failed", nil), "orchestrator error: turn failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorTaxonomy_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewAgentError("Weather Agent", "oracle query failed", NewOracleError("openai", "request failed", cause))

	var oracleErr *OracleError
	require.True(t, errors.As(err, &oracleErr))
	assert.Equal(t, "openai", oracleErr.Provider)
	assert.True(t, errors.Is(err, cause))
}

func TestParseError_KeepsRawReply(t *testing.T) {
	err := NewParseError("reply is not a parsable object", "definitely not json")
	assert.Equal(t, "parse error: reply is not a parsable object", err.Error())
	assert.Equal(t, "definitely not json", err.Raw)
}
