package tool

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Args carries a tool's invocation argument, which arrives either as a free
// string or as a mapping. The only shape contract between agent and tool is
// the normalization rule in Location: a mapping with a "location" key uses
// that value, any other mapping coerces its first value to a string.
type Args struct {
	text string
	raw  string // JSON object when the argument arrived as a mapping
}

// StringArgs wraps a free-string argument.
func StringArgs(s string) Args { return Args{text: s} }

// JSONArgs wraps a mapping argument given as a JSON object document.
// Document key order is preserved for the first-value coercion rule.
func JSONArgs(raw string) Args { return Args{raw: raw} }

// MapArgs wraps a mapping argument given as a Go map. Go maps carry no key
// order, so the document produced here (and therefore the first-value rule)
// follows encoding/json's sorted-key order.
func MapArgs(m map[string]string) Args {
	b, err := json.Marshal(m)
	if err != nil {
		return Args{}
	}
	return Args{raw: string(b)}
}

// Location normalizes the argument to a single location string: a free string
// is used as-is; a mapping with a "location" key yields that value; any other
// mapping yields its first value coerced to a string.
func (a Args) Location() string {
	if a.raw == "" {
		return a.text
	}
	doc := gjson.Parse(a.raw)
	if !doc.IsObject() {
		return doc.String()
	}
	if loc := doc.Get("location"); loc.Exists() {
		return loc.String()
	}
	var first string
	doc.ForEach(func(_, value gjson.Result) bool {
		first = value.String()
		return false
	})
	return first
}

// String renders the argument for logging.
func (a Args) String() string {
	if a.raw != "" {
		return a.raw
	}
	return a.text
}
