// Package daybrief provides a high-level façade over the orchestration layer
// for a personal assistant that answers weather, local-time and clothing
// questions. Most applications interact with this package by:
//  1. Creating an Assistant via New() with an llm.Oracle (one Assistant per
//     conversation session)
//  2. Calling Process for each user utterance
//
// The façade wires the Open-Meteo geo client into the three domain tools,
// wraps each tool in an agent, and delegates turn handling to the
// orchestrator. All defaults are safe for local development; production
// deployments typically supply a structured logger and configuration.
package daybrief

import (
	"context"
	"fmt"
	"time"

	"github.com/daybrief-ai/daybrief/agent"
	"github.com/daybrief-ai/daybrief/config"
	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/geo"
	"github.com/daybrief-ai/daybrief/llm"
	"github.com/daybrief-ai/daybrief/llm/anthropic"
	"github.com/daybrief-ai/daybrief/llm/openai"
	"github.com/daybrief-ai/daybrief/logging"
	"github.com/daybrief-ai/daybrief/orchestrator"
	"github.com/daybrief-ai/daybrief/tool"
)

// Options configures an Assistant instance.
type Options struct {
	// Logger defaults to a NoOp logger if nil.
	Logger logging.Logger
	// MaxMemory bounds each agent's conversation memory (default 10).
	MaxMemory int
	// ContextExpiry is the shared-context staleness window (default 30m).
	ContextExpiry time.Duration
	// Geo overrides the Open-Meteo client (tests supply a stub).
	Geo tool.GeoClient
}

// Assistant aggregates one conversation session: the orchestrator, its three
// agents and their shared context. It must not be shared across concurrent
// conversations; create one Assistant per session.
type Assistant struct {
	orch *orchestrator.Orchestrator
}

// New creates an Assistant around the given oracle. Any unset service is
// initialized with a production default (live Open-Meteo client, NoOp logger).
func New(oracle llm.Oracle, optFns ...func(o *Options)) (*Assistant, error) {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		MaxMemory:     10,
		ContextExpiry: core.DefaultContextExpiry,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Geo == nil {
		opts.Geo = geo.NewClient(func(o *geo.Options) {
			o.Logger = opts.Logger
		})
	}

	toolLogger := opts.Logger
	weather := tool.NewWeatherTool(opts.Geo, func(o *tool.WeatherToolOptions) { o.Logger = toolLogger })
	timeinfo := tool.NewTimeTool(opts.Geo, func(o *tool.TimeToolOptions) { o.Logger = toolLogger })
	clothing := tool.NewClothingTool(opts.Geo, func(o *tool.ClothingToolOptions) { o.Logger = toolLogger })

	agents := map[orchestrator.Intent]orchestrator.Agent{}
	for intent, spec := range map[orchestrator.Intent]struct {
		name        string
		description string
		t           tool.Tool
	}{
		orchestrator.IntentWeather:  {"Weather Agent", "Provides weather information for a given location", weather},
		orchestrator.IntentTime:     {"Time Agent", "Provides the current time for a given city", timeinfo},
		orchestrator.IntentClothing: {"Clothing Agent", "Provides clothing recommendations based on weather conditions", clothing},
	} {
		ag, err := agent.New(spec.name, oracle, []tool.Tool{spec.t}, func(o *agent.Options) {
			o.Description = spec.description
			o.MaxMemory = opts.MaxMemory
			o.Logger = opts.Logger
		})
		if err != nil {
			return nil, fmt.Errorf("initializing %s: %w", spec.name, err)
		}
		agents[intent] = ag
	}

	shared := core.NewSharedContext(func(o *core.SharedContextOptions) {
		o.Expiry = opts.ContextExpiry
	})

	orch := orchestrator.New(agents, func(o *orchestrator.Options) {
		o.Shared = shared
		o.Logger = opts.Logger
	})

	return &Assistant{orch: orch}, nil
}

// Process handles one user utterance and returns the merged reply.
func (a *Assistant) Process(ctx context.Context, utterance string) string {
	return a.orch.Process(ctx, utterance)
}

// Orchestrator exposes the underlying orchestrator (follow-up prompts,
// shared context access for the interactive loop).
func (a *Assistant) Orchestrator() *orchestrator.Orchestrator { return a.orch }

// NewOracleFromConfig builds the configured oracle backend.
func NewOracleFromConfig(cfg *config.Config, logger logging.Logger) (llm.Oracle, error) {
	switch cfg.Oracle.Provider {
	case "openai", "":
		return openai.NewOracle(func(o *openai.Options) {
			if cfg.Oracle.Model != "" {
				o.Model = cfg.Oracle.Model
			}
			o.APIKey = cfg.Oracle.APIKey
			o.BaseURL = cfg.Oracle.BaseURL
			o.Logger = logger
		}), nil
	case "anthropic":
		return anthropic.NewOracle(func(o *anthropic.Options) {
			if cfg.Oracle.Model != "" {
				o.Model = cfg.Oracle.Model
			}
			o.APIKey = cfg.Oracle.APIKey
			o.Logger = logger
		}), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Oracle.Provider)
	}
}
