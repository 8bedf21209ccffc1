// Package agent implements the decision loop that sits between the
// orchestrator and the domain tools: each agent owns a bounded conversation
// memory and a closed set of tools, asks the oracle what to do with an
// utterance, and either invokes a tool or answers directly. Failures inside
// the loop never escape; they degrade to a fixed apologetic reply.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/llm"
	"github.com/daybrief-ai/daybrief/logging"
	"github.com/daybrief-ai/daybrief/memory"
	"github.com/daybrief-ai/daybrief/tool"
)

// DefaultApology is returned whenever the decision loop fails internally.
const DefaultApology = "I'm sorry, I'm having trouble processing that right now. Please try again."

// CallContext carries the ambient slots the orchestrator resolved for this
// turn, the active location in particular.
type CallContext struct {
	Location string
}

// Options configures an Agent.
type Options struct {
	Description string
	MaxMemory   int
	Logger      logging.Logger
	// Apology overrides the fixed reply used when the loop fails internally.
	Apology string
}

// Agent wraps one or more tools and turns a user utterance plus conversation
// history into either a direct reply or a tool invocation, using the oracle
// as the decision maker.
type Agent struct {
	name        string
	description string
	oracle      llm.Oracle
	tools       []tool.Tool          // registration order, used for prompt construction
	byName      map[string]tool.Tool // lower-cased name -> tool, validated at registration
	mem         *memory.Conversation
	logger      logging.Logger
	apology     string
}

// New constructs an Agent owning the given tools. Tool names form a closed
// dispatch table validated here: an empty or duplicate (case-insensitive)
// name is a configuration error, not something to discover at call time.
func New(name string, oracle llm.Oracle, tools []tool.Tool, optFns ...func(o *Options)) (*Agent, error) {
	opts := Options{
		MaxMemory: memory.DefaultMaxTurns,
		Logger:    logging.NoOpLogger{},
		Apology:   DefaultApology,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	byName := make(map[string]tool.Tool, len(tools))
	for _, t := range tools {
		key := strings.ToLower(t.Name())
		if key == "" {
			return nil, fmt.Errorf("agent %s: tool with empty name", name)
		}
		if _, exists := byName[key]; exists {
			return nil, fmt.Errorf("agent %s: duplicate tool name %q", name, t.Name())
		}
		byName[key] = t
	}

	return &Agent{
		name:        name,
		description: opts.Description,
		oracle:      oracle,
		tools:       tools,
		byName:      byName,
		mem:         memory.NewConversation(opts.MaxMemory),
		logger:      opts.Logger,
		apology:     opts.Apology,
	}, nil
}

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// Description returns the agent's capability description.
func (a *Agent) Description() string { return a.description }

// Memory exposes the agent's conversation memory (owned by this agent; do
// not share across agents).
func (a *Agent) Memory() *memory.Conversation { return a.mem }

// Process runs one turn of the decision loop: remember the utterance, ask the
// oracle, parse its reply into a directive, and either invoke the matching
// tool or answer directly. Any failure between prompt construction and
// directive parsing is logged and absorbed into the apology reply; it is
// never surfaced to the orchestrator as an error.
func (a *Agent) Process(ctx context.Context, utterance string, callCtx CallContext) string {
	a.mem.Append(core.RoleUser, utterance)

	prompt := a.buildPrompt(callCtx)

	reply, err := a.oracle.Query(ctx, prompt)
	if err != nil {
		agentErr := core.NewAgentError(a.name, "oracle query failed", err)
		a.logger.Error("agent.process.oracle_failed", "agent", a.name, "error", agentErr.Error())
		return a.apology
	}
	a.mem.Append(core.RoleAgent, reply)

	directive, err := ParseDirective(llm.CleanReply(reply))
	if err != nil {
		agentErr := core.NewAgentError(a.name, "directive parse failed", err)
		a.logger.Error("agent.process.parse_failed", "agent", a.name, "error", agentErr.Error(), "reply", reply)
		return a.apology
	}

	if directive.IsRespond() {
		a.logger.Debug("agent.process.direct_reply", "agent", a.name)
		return directive.Reply()
	}

	if t, ok := a.byName[strings.ToLower(directive.Action)]; ok {
		args := directive.Args
		if args.Location() == "" && callCtx.Location != "" {
			args = tool.StringArgs(callCtx.Location)
		}
		a.logger.Debug("agent.process.tool_dispatch", "agent", a.name, "tool", t.Name(), "args", args.String())
		return t.Use(ctx, args)
	}

	// Unknown action: fall back to treating the args as the reply.
	a.logger.Warn("agent.process.unknown_action", "agent", a.name, "action", directive.Action)
	return directive.Reply()
}

// buildPrompt assembles the oracle prompt: the trailing memory window, the
// descriptors of every owned tool, the ambient location when one is resolved,
// and the fixed instruction pinning the structured response format.
func (a *Agent) buildPrompt(callCtx CallContext) string {
	var b strings.Builder
	b.WriteString("Context:\n")
	b.WriteString(a.mem.Window())
	b.WriteString("\n\n")

	if callCtx.Location != "" {
		fmt.Fprintf(&b, "Known location: %s\n\n", callCtx.Location)
	}

	b.WriteString("Available tools:\n")
	for _, t := range a.tools {
		fmt.Fprintf(&b, "- %s: %s\n", t.Name(), t.Description())
	}

	b.WriteString("\nBased on the user's input and context, decide if you should use a tool or respond directly.\n")
	b.WriteString("If you identify an action, respond with the tool name and the arguments for the tool.\n")
	b.WriteString("If you decide to respond directly to the user then make the action \"respond_to_user\" with args as your response.\n")
	b.WriteString("\nRespond with a single JSON object in the form {\"action\": \"\", \"args\": \"\"}.\n")
	return b.String()
}
