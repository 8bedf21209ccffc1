// Package orchestrator coordinates a conversation turn end to end: classify
// the utterance into intents, resolve the sticky location slot through the
// shared context, fan the utterance out to the agents the intents select,
// and merge their replies into one response. It is the last absorption
// boundary: no failure leaves Process as an error.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybrief-ai/daybrief/agent"
	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/logging"
)

// LocationKey is the shared-context slot holding the active location.
const LocationKey = "location"

// Agent is the slice of the agent package the orchestrator depends on.
// Declared here so tests can substitute stubs.
type Agent interface {
	Name() string
	Process(ctx context.Context, utterance string, callCtx agent.CallContext) string
}

// Rotating conversational dressing for the interactive loop.
var (
	followUpPrompts = []string{
		"What else would you like to know?",
		"Is there anything else I can help you with?",
		"What other information would be helpful?",
		"Feel free to ask me anything else!",
		"Would you like to know anything else about the weather or what to wear?",
		"I'm here to help - what's on your mind?",
		"Need any other assistance?",
		"Anything else you'd like to check?",
	}
	goodbyeMessages = []string{
		"Take care! Have a great day!",
		"Goodbye! Stay warm and stylish!",
		"See you next time! Have a wonderful day!",
		"Thanks for chatting! Stay amazing!",
		"Bye for now! Remember to dress for the weather!",
	}
	exitPhrases = map[string]bool{
		"exit": true, "bye": true, "quit": true, "no": true, "nope": true,
		"that's all": true, "that is all": true, "nothing else": true,
		"i'm good": true, "im good": true, "i am good": true, "thanks": true,
		"thank you": true, "that's it": true, "that will be all": true,
	}
	negativeReplies = map[string]bool{"no": true, "nope": true, "nothing": true}
)

// Options configures an Orchestrator.
type Options struct {
	Classifier *Classifier
	Shared     *core.SharedContext
	Logger     logging.Logger
}

// Orchestrator owns one conversation session: one classifier, one shared
// context, and one agent per intent tag. It must not be shared across
// concurrent conversations; give each session its own instance set.
type Orchestrator struct {
	classifier *Classifier
	agents     map[Intent]Agent
	shared     *core.SharedContext
	logger     logging.Logger

	promptIdx  int
	goodbyeIdx int
}

// New constructs an Orchestrator over the given per-intent agents.
func New(agents map[Intent]Agent, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Classifier: NewClassifier(),
		Shared:     core.NewSharedContext(),
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{
		classifier: opts.Classifier,
		agents:     agents,
		shared:     opts.Shared,
		logger:     opts.Logger,
	}
}

// Shared exposes the session's shared context.
func (o *Orchestrator) Shared() *core.SharedContext { return o.shared }

// Process handles one conversation turn and always returns user-facing text.
// Tool and agent failures are absorbed below this layer; anything that still
// escapes is converted here, exactly once, into a sentence carrying the
// error's summary. No failure propagates to the caller as an error.
func (o *Orchestrator) Process(ctx context.Context, utterance string) string {
	reply, err := o.processTurn(ctx, utterance)
	if err != nil {
		orchErr := core.NewOrchestratorError("turn failed", err)
		o.logger.Error("orchestrator.process.failed", "error", orchErr.Error(), "utterance", utterance)
		return fmt.Sprintf("I encountered an error processing your request: %s", err.Error())
	}
	return reply
}

func (o *Orchestrator) processTurn(ctx context.Context, utterance string) (string, error) {
	utterance = strings.TrimSpace(utterance)
	if negativeReplies[strings.ToLower(utterance)] {
		return "Alright! Let me know if you need anything else!", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	intents := o.classifier.Classify(utterance)
	location := o.resolveLocation(utterance)
	o.logger.Info("orchestrator.turn", "intents", intentNames(intents), "location", location)

	var replies []string
	for _, intent := range intents {
		ag, ok := o.agents[intent]
		if !ok {
			// A classified intent with no registered agent vanishes from the
			// merged reply without diagnostics beyond this line.
			o.logger.Warn("orchestrator.fanout.no_agent", "intent", string(intent))
			continue
		}
		reply := ag.Process(ctx, utterance, agent.CallContext{Location: location})
		if reply != "" {
			replies = append(replies, reply)
		}
	}

	if len(replies) == 0 {
		return "I'm not sure how to help with that request.", nil
	}
	return strings.Join(replies, "\n\n"), nil
}

// resolveLocation returns the active location slot: the sticky shared-context
// value when present, otherwise a syntactic extraction from the utterance
// (everything after the first "in" token, else the last token). The resolved
// value is written back so it stays sticky for subsequent turns.
func (o *Orchestrator) resolveLocation(utterance string) string {
	if loc, ok := o.shared.Get(LocationKey); ok && loc != "" {
		o.shared.Update(LocationKey, loc)
		return loc
	}

	loc := extractLocation(utterance)
	if loc != "" {
		o.shared.Update(LocationKey, loc)
	}
	return loc
}

// extractLocation pulls a location candidate out of the utterance text. This
// is deliberately syntactic; validation happens later at the geocoder.
func extractLocation(utterance string) string {
	fields := strings.Fields(utterance)
	for i, f := range fields {
		if strings.EqualFold(f, "in") && i+1 < len(fields) {
			return trimPunct(strings.Join(fields[i+1:], " "))
		}
	}
	if len(fields) == 0 {
		return ""
	}
	return trimPunct(fields[len(fields)-1])
}

func trimPunct(s string) string {
	return strings.Trim(s, " ,.!?\"'")
}

// NextFollowUp returns the next follow-up prompt in rotation.
func (o *Orchestrator) NextFollowUp() string {
	p := followUpPrompts[o.promptIdx]
	o.promptIdx = (o.promptIdx + 1) % len(followUpPrompts)
	return p
}

// NextGoodbye returns the next goodbye message in rotation.
func (o *Orchestrator) NextGoodbye() string {
	m := goodbyeMessages[o.goodbyeIdx]
	o.goodbyeIdx = (o.goodbyeIdx + 1) % len(goodbyeMessages)
	return m
}

// IsExitPhrase reports whether the input ends the conversation.
func IsExitPhrase(input string) bool {
	return exitPhrases[strings.ToLower(strings.TrimSpace(input))]
}

func intentNames(intents []Intent) string {
	names := make([]string, len(intents))
	for i, it := range intents {
		names[i] = string(it)
	}
	return strings.Join(names, ",")
}
