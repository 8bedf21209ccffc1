package agent

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/tool"
)

// ActionRespond is the sentinel action an oracle emits to answer the user
// directly instead of invoking a tool. Matched case-insensitively.
const ActionRespond = "respond_to_user"

// Directive is the parsed decision extracted from an oracle's free-text
// reply: either a tool invocation or a direct response. It is transient,
// constructed and consumed within one Process call.
type Directive struct {
	Action string
	Args   tool.Args
	// Normalized is the directive re-encoded as a strict JSON document.
	Normalized string
}

// IsRespond reports whether the directive carries the direct-response sentinel.
func (d Directive) IsRespond() bool {
	return strings.EqualFold(d.Action, ActionRespond)
}

// Reply renders the directive's args as a direct user-facing reply.
func (d Directive) Reply() string { return d.Args.String() }

// ParseDirective turns a raw oracle reply into a Directive. Oracle output is
// untrusted: the reply may wrap the structure in prose, use Python literal
// syntax (single quotes, True/False/None) instead of JSON, or be garbage.
// The parser extracts the outermost braced region, converts literal syntax to
// strict JSON, and validates that the result is a single object carrying both
// "action" and "args". Anything else is a *core.ParseError.
func ParseDirective(reply string) (Directive, error) {
	body, ok := extractBraced(reply)
	if !ok {
		return Directive{}, core.NewParseError("reply contains no object structure", reply)
	}

	doc := body
	if !gjson.Valid(doc) || !gjson.Parse(doc).IsObject() {
		doc = literalToJSON(body)
		if !gjson.Valid(doc) || !gjson.Parse(doc).IsObject() {
			return Directive{}, core.NewParseError("reply is not a parsable object", reply)
		}
	}

	parsed := gjson.Parse(doc)
	action := parsed.Get("action")
	args := parsed.Get("args")
	if !action.Exists() || !args.Exists() {
		return Directive{}, core.NewParseError(`reply object must carry both "action" and "args"`, reply)
	}
	if action.Type != gjson.String {
		return Directive{}, core.NewParseError(`"action" must be a string`, reply)
	}

	d := Directive{Action: action.String()}
	if args.IsObject() {
		d.Args = tool.JSONArgs(args.Raw)
	} else {
		d.Args = tool.StringArgs(args.String())
	}

	normalized, _ := sjson.Set(`{}`, "action", d.Action)
	if args.IsObject() {
		normalized, _ = sjson.SetRaw(normalized, "args", args.Raw)
	} else {
		normalized, _ = sjson.Set(normalized, "args", args.String())
	}
	d.Normalized = normalized
	return d, nil
}

// extractBraced returns the outermost balanced {...} region of s, honoring
// quoted strings so braces inside values do not affect the balance.
func extractBraced(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	var quote byte
	for i := start; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// literalToJSON rewrites a Python-literal-like structure into JSON: single
// quoted strings become JSON strings and the bare words True/False/None
// become their JSON counterparts. Content already in double quotes is
// re-encoded so embedded control characters survive.
func literalToJSON(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\'' || c == '"':
			str, next := readQuoted(s, i)
			enc, err := json.Marshal(str)
			if err != nil {
				return s
			}
			b.Write(enc)
			i = next
		case isWordStart(c):
			j := i
			for j < len(s) && isWordChar(s[j]) {
				j++
			}
			switch s[i:j] {
			case "True":
				b.WriteString("true")
			case "False":
				b.WriteString("false")
			case "None":
				b.WriteString("null")
			default:
				b.WriteString(s[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// readQuoted consumes the quoted string starting at s[start] and returns its
// unescaped content plus the index just past the closing quote.
func readQuoted(s string, start int) (string, int) {
	quote := s[start]
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(s[i+1])
			}
			i += 2
			continue
		}
		if c == quote {
			return b.String(), i + 1
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), i
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}
