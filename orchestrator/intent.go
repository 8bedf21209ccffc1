package orchestrator

import "strings"

// Intent is a routing tag from the closed set the classifier can produce.
type Intent string

const (
	// IntentWeather routes to the weather agent.
	IntentWeather Intent = "weather"
	// IntentTime routes to the time agent.
	IntentTime Intent = "time"
	// IntentClothing routes to the clothing agent.
	IntentClothing Intent = "clothing"
)

// canonicalOrder fixes the tag order used for fan-out and merge.
var canonicalOrder = []Intent{IntentWeather, IntentTime, IntentClothing}

var defaultKeywords = map[Intent][]string{
	IntentWeather:  {"weather", "temperature", "forecast", "rain", "snow", "sunny"},
	IntentTime:     {"time", "clock", "hour"},
	IntentClothing: {"wear", "clothing", "clothes", "outfit", "dress"},
}

// summaryKeywords expand an utterance to every intent at once.
var summaryKeywords = []string{"summarize", "summary", "rundown", "brief", "tell me about"}

// ClassifierOptions configures a Classifier.
type ClassifierOptions struct {
	// Keywords overrides the per-intent keyword sets.
	Keywords map[Intent][]string
	// Defaults is the non-empty subset substituted when nothing matches.
	Defaults []Intent
}

// Classifier maps an utterance to a non-empty, canonically ordered subset of
// intents by case-insensitive keyword scan. Routing never produces an empty
// set: a zero-match utterance gets the fixed default subset instead.
type Classifier struct {
	keywords map[Intent][]string
	defaults []Intent
}

// NewClassifier constructs a Classifier with the built-in keyword sets and a
// default subset of {weather}.
func NewClassifier(optFns ...func(o *ClassifierOptions)) *Classifier {
	opts := ClassifierOptions{
		Keywords: defaultKeywords,
		Defaults: []Intent{IntentWeather},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if len(opts.Defaults) == 0 {
		opts.Defaults = []Intent{IntentWeather}
	}
	return &Classifier{keywords: opts.Keywords, defaults: opts.Defaults}
}

// Classify scans the utterance and returns the matching intents in canonical
// order. Summary phrasing ("give me a rundown", ...) selects every intent.
func (c *Classifier) Classify(utterance string) []Intent {
	lowered := strings.ToLower(utterance)

	for _, kw := range summaryKeywords {
		if strings.Contains(lowered, kw) {
			out := make([]Intent, len(canonicalOrder))
			copy(out, canonicalOrder)
			return out
		}
	}

	var out []Intent
	for _, intent := range canonicalOrder {
		for _, kw := range c.keywords[intent] {
			if strings.Contains(lowered, kw) {
				out = append(out, intent)
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, c.defaults...)
	}
	return out
}
