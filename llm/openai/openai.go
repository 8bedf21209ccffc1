// Package openai provides an Oracle implementation using the OpenAI Chat
// Completions API. It adapts the assistant's plain prompt-in/text-out contract
// onto the SDK's message format.
package openai

import (
	"context"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/llm"
	"github.com/daybrief-ai/daybrief/logging"
)

// Options configure the OpenAI oracle adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	APIKey              string
	BaseURL             string
	Logger              logging.Logger
}

// Oracle wraps the OpenAI Chat Completions API behind the llm.Oracle interface.
type Oracle struct {
	client *openai.Client
	opts   Options
}

// NewOracle creates a new OpenAI oracle using the official client.
func NewOracle(optFns ...func(o *Options)) *Oracle {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := openai.NewClient(clientOpts...)
	return &Oracle{client: &client, opts: opts}
}

// NewOracleFromClient creates a new OpenAI oracle from an existing client.
func NewOracleFromClient(client *openai.Client, optFns ...func(o *Options)) *Oracle {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Oracle{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:               openai.ChatModelGPT4o,
		Temperature:         0.2,
		MaxCompletionTokens: 150,
		Logger:              logging.NoOpLogger{},
	}
}

// Query implements llm.Oracle. The raw completion is fence-stripped before it
// is returned so downstream parsing sees only the payload.
func (o *Oracle) Query(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:               o.opts.Model,
		Temperature:         openai.Float(o.opts.Temperature),
		MaxCompletionTokens: openai.Int(o.opts.MaxCompletionTokens),
	})
	if err != nil {
		logging.LogOracleCall(o.opts.Logger, "openai", o.opts.Model, time.Since(start), false, err)
		return "", core.NewOracleError("openai", "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		logging.LogOracleCall(o.opts.Logger, "openai", o.opts.Model, time.Since(start), false, nil)
		return "", core.NewOracleError("openai", "no choices returned", nil)
	}

	logging.LogOracleCall(o.opts.Logger, "openai", o.opts.Model, time.Since(start), true, nil)
	return llm.CleanReply(resp.Choices[0].Message.Content), nil
}
