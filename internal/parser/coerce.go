package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/shapestone/shape-yamlite/internal/tokenizer"
	"github.com/shapestone/shape-yamlite/pkg/value"
)

var (
	floatPattern   = regexp.MustCompile(`^[+-]?[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

	// singleKeyValuePattern matches a whole scalar written as "key: value".
	singleKeyValuePattern = regexp.MustCompile(`^(` + keyPattern + `):\s+(.+)$`)

	// flowEntryPattern matches one chunk of an inline mapping.
	flowEntryPattern = regexp.MustCompile(`^\s*(` + keyPattern + `)\s*:\s+(.*\S)\s*$`)
)

// keywords are matched before every other rule.
var keywords = map[string]value.Value{
	"true":  value.Bool(true),
	"false": value.Bool(false),
	"null":  value.Null(),
	".NaN":  value.Float(math.NaN()),
	".inf":  value.Float(math.Inf(1)),
	"-.inf": value.Float(math.Inf(-1)),
}

// Coerce turns a raw scalar into a typed value. Rules apply in a fixed
// order and the first match wins:
//
//  1. keywords: true, false, null, .NaN, .inf, -.inf
//  2. "double quoted" (inner text verbatim, no escapes)
//  3. 'single quoted'
//  4. float
//  5. integer (int64 overflow falls back to float)
//  6. date/time
//  7. a single "key: value" pair, as a one-entry mapping
//  8. [inline, sequence]
//  9. {inline: mapping}
//  10. the trimmed string itself
//
// Coerce never fails.
func Coerce(raw string) value.Value {
	s := strings.TrimSpace(raw)

	if v, ok := keywords[s]; ok {
		return v
	}

	if inner, ok := quoted(s, '"'); ok {
		return value.String(inner)
	}
	if inner, ok := quoted(s, '\''); ok {
		return value.String(inner)
	}

	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return value.Float(f)
		}
	}

	if integerPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return value.Int(i)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return value.Float(f)
		}
	}

	if s != "" {
		if t, err := cast.StringToDate(s); err == nil {
			return value.Date(t)
		}
	}

	if m := singleKeyValuePattern.FindStringSubmatch(s); m != nil {
		mapping := value.NewMapping()
		mapping.Set(unquoteKey(m[1]), Coerce(m[2]))
		return value.FromMapping(mapping)
	}

	if inner, ok := bracketed(s, '[', ']'); ok {
		return coerceFlowSequence(inner)
	}

	if inner, ok := bracketed(s, '{', '}'); ok {
		return coerceFlowMapping(inner)
	}

	return value.String(s)
}

func coerceFlowSequence(inner string) value.Value {
	chunks := tokenizer.SplitFlow(inner)
	items := make([]value.Value, 0, len(chunks))
	for _, chunk := range chunks {
		items = append(items, Coerce(chunk))
	}
	return value.Sequence(items...)
}

func coerceFlowMapping(inner string) value.Value {
	mapping := value.NewMapping()
	for _, chunk := range tokenizer.SplitFlow(inner) {
		m := flowEntryPattern.FindStringSubmatch(chunk)
		if m == nil {
			continue
		}
		mapping.Set(unquoteKey(m[1]), Coerce(m[2]))
	}
	return value.FromMapping(mapping)
}

// quoted returns the inner text of s when s is wrapped in q and contains no
// other q.
func quoted(s string, q byte) (string, bool) {
	if len(s) < 2 || s[0] != q || s[len(s)-1] != q {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return "", false
	}
	return inner, true
}

// bracketed returns the inner text of s when it starts with open and ends
// with closing.
func bracketed(s string, open, closing byte) (string, bool) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != closing {
		return "", false
	}
	return s[1 : len(s)-1], true
}
