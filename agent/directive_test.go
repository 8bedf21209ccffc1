package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybrief-ai/daybrief/core"
)

func TestParseDirective_StrictJSON(t *testing.T) {
	d, err := ParseDirective(`{"action": "Weather Agent", "args": "London"}`)
	require.NoError(t, err)
	assert.Equal(t, "Weather Agent", d.Action)
	assert.Equal(t, "London", d.Args.Location())
	assert.False(t, d.IsRespond())
}

func TestParseDirective_PythonLiteral(t *testing.T) {
	d, err := ParseDirective(`{'action': 'respond_to_user', 'args': 'It is sunny today.'}`)
	require.NoError(t, err)
	assert.True(t, d.IsRespond())
	assert.Equal(t, "It is sunny today.", d.Reply())
}

func TestParseDirective_PythonLiteralWithBooleans(t *testing.T) {
	d, err := ParseDirective(`{'action': 'Weather Agent', 'args': {'location': 'Oslo', 'detailed': True}}`)
	require.NoError(t, err)
	assert.Equal(t, "Weather Agent", d.Action)
	assert.Equal(t, "Oslo", d.Args.Location())
}

func TestParseDirective_EmbeddedInProse(t *testing.T) {
	reply := "Sure! Here is my decision: {'action': 'Time Agent', 'args': 'Tokyo'} Hope that helps."
	d, err := ParseDirective(reply)
	require.NoError(t, err)
	assert.Equal(t, "Time Agent", d.Action)
	assert.Equal(t, "Tokyo", d.Args.Location())
}

func TestParseDirective_NestedMappingArgs(t *testing.T) {
	d, err := ParseDirective(`{"action": "Clothing Agent", "args": {"location": "Paris"}}`)
	require.NoError(t, err)
	assert.Equal(t, "Paris", d.Args.Location())
}

func TestParseDirective_ApostropheInsideDoubleQuotes(t *testing.T) {
	d, err := ParseDirective(`{"action": "respond_to_user", "args": "It's going to rain."}`)
	require.NoError(t, err)
	assert.Equal(t, "It's going to rain.", d.Reply())
}

func TestParseDirective_EscapedQuoteInLiteral(t *testing.T) {
	d, err := ParseDirective(`{'action': 'respond_to_user', 'args': 'Don\'t forget an umbrella.'}`)
	require.NoError(t, err)
	assert.Equal(t, "Don't forget an umbrella.", d.Reply())
}

func TestParseDirective_NormalizedIsStrictJSON(t *testing.T) {
	d, err := ParseDirective(`{'action': 'Weather Agent', 'args': {'location': 'Oslo'}}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"Weather Agent","args":{"location":"Oslo"}}`, d.Normalized)
}

func TestParseDirective_Failures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty", ""},
		{"no structure", "I'd recommend bringing a jacket."},
		{"missing args", `{"action": "Weather Agent"}`},
		{"missing action", `{"args": "London"}`},
		{"action not a string", `{"action": 42, "args": "London"}`},
		{"unbalanced braces", `{"action": "Weather Agent", "args": "London"`},
		{"array not object", `["action", "args"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirective(tt.reply)
			require.Error(t, err)

			var parseErr *core.ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestDirective_IsRespondCaseInsensitive(t *testing.T) {
	d, err := ParseDirective(`{"action": "RESPOND_TO_USER", "args": "hello"}`)
	require.NoError(t, err)
	assert.True(t, d.IsRespond())
}
