// Package anthropic provides an Oracle implementation for the Anthropic
// Claude Messages API.
package anthropic

import (
	"context"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/llm"
	"github.com/daybrief-ai/daybrief/logging"
)

// Options configures the Anthropic oracle adapter (temperature, model id,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	APIKey      string
	Logger      logging.Logger
}

// Oracle wraps the Anthropic Messages API behind the llm.Oracle interface.
type Oracle struct {
	client *anthropic.Client
	opts   Options
}

// NewOracle creates a new Anthropic oracle using the official client.
func NewOracle(optFns ...func(o *Options)) *Oracle {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)
	return &Oracle{client: &client, opts: opts}
}

// NewOracleFromClient creates a new Anthropic oracle from an existing client.
func NewOracleFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Oracle {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Oracle{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       string(anthropic.ModelClaude3_5Sonnet20241022),
		Temperature: 0.2,
		MaxTokens:   150,
		Logger:      logging.NoOpLogger{},
	}
}

// Query implements llm.Oracle.
func (o *Oracle) Query(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := o.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(o.opts.Model),
		MaxTokens:   o.opts.MaxTokens,
		Temperature: anthropic.Float(o.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		logging.LogOracleCall(o.opts.Logger, "anthropic", o.opts.Model, time.Since(start), false, err)
		return "", core.NewOracleError("anthropic", "message create failed", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	if text == "" {
		logging.LogOracleCall(o.opts.Logger, "anthropic", o.opts.Model, time.Since(start), false, nil)
		return "", core.NewOracleError("anthropic", "empty completion", nil)
	}

	logging.LogOracleCall(o.opts.Logger, "anthropic", o.opts.Model, time.Since(start), true, nil)
	return llm.CleanReply(text), nil
}
