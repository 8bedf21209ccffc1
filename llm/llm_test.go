package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "plain reply untouched",
			reply: `{"action": "respond_to_user", "args": "hi"}`,
			want:  `{"action": "respond_to_user", "args": "hi"}`,
		},
		{
			name:  "json fence stripped",
			reply: "```json\n{\"action\": \"respond_to_user\", \"args\": \"hi\"}\n```",
			want:  `{"action": "respond_to_user", "args": "hi"}`,
		},
		{
			name:  "bare fence stripped",
			reply: "```\n{\"action\": \"x\", \"args\": \"y\"}\n```",
			want:  `{"action": "x", "args": "y"}`,
		},
		{
			name:  "inline backticks removed",
			reply: "use the `Weather Agent` tool",
			want:  "use the Weather Agent tool",
		},
		{
			name:  "surrounding whitespace trimmed",
			reply: "  hello  \n",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanReply(tt.reply))
		})
	}
}

func TestMockOracle(t *testing.T) {
	m := NewMockOracle()
	m.AddReply("weather", `{"action": "Weather Agent", "args": "London"}`)

	got, err := m.Query(context.Background(), "what's the weather like")
	require.NoError(t, err)
	assert.Equal(t, `{"action": "Weather Agent", "args": "London"}`, got)

	got, err = m.Query(context.Background(), "unmatched prompt")
	require.NoError(t, err)
	assert.Equal(t, m.Default, got)

	assert.Len(t, m.Prompts, 2)
}

func TestMockOracle_Err(t *testing.T) {
	m := NewMockOracle()
	m.Err = fmt.Errorf("provider down")

	_, err := m.Query(context.Background(), "anything")
	require.Error(t, err)
}

func TestMockOracle_CancelledContext(t *testing.T) {
	m := NewMockOracle()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Query(ctx, "anything")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Prompts)
}
