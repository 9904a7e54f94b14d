package parser

import (
	"regexp"
	"strings"
)

// keyPattern matches a mapping key: a quoted run, or a plain key of
// letters, digits, '_', '-', '.', '/', '$' and inner spaces.
const keyPattern = `"[^"]*"|'[^']*'|[A-Za-z0-9_.$/-][A-Za-z0-9_.$/ -]*`

var (
	// entryPattern matches "key:", "key: value" and their "- " item forms.
	entryPattern = regexp.MustCompile(`^(-\s+)?(` + keyPattern + `):(?:\s+(.*))?$`)

	bareItemPattern = regexp.MustCompile(`^-\s*$`)
	itemPattern     = regexp.MustCompile(`^-\s+(.+)$`)
)

// lineKind is the role of a content line inside a block.
type lineKind int

const (
	lineUnknown   lineKind = iota
	lineEntry              // key: value, key:
	lineItemEntry          // - key: value, - key:
	lineBareItem           // -
	lineItem               // - value
)

// lineInfo is a classified content line.
type lineInfo struct {
	kind     lineKind
	key      string
	value    string
	hasValue bool
}

// classify determines the role of a trimmed line. Entries take precedence
// over items, so "- name: a" opens a mapping element rather than a scalar.
func classify(text string) lineInfo {
	if m := entryPattern.FindStringSubmatch(text); m != nil {
		info := lineInfo{
			kind:  lineEntry,
			key:   unquoteKey(m[2]),
			value: strings.TrimSpace(m[3]),
		}
		info.hasValue = info.value != ""
		if m[1] != "" {
			info.kind = lineItemEntry
		}
		return info
	}
	if bareItemPattern.MatchString(text) {
		return lineInfo{kind: lineBareItem}
	}
	if m := itemPattern.FindStringSubmatch(text); m != nil {
		return lineInfo{kind: lineItem, value: strings.TrimSpace(m[1]), hasValue: true}
	}
	return lineInfo{kind: lineUnknown}
}

// unquoteKey trims a key and removes one pair of surrounding quotes.
func unquoteKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 {
		first, last := key[0], key[len(key)-1]
		if (first == '"' || first == '\'') && first == last {
			return key[1 : len(key)-1]
		}
	}
	return key
}

// valuePrefix identifies the special value forms dispatched on their first
// character.
type valuePrefix int

const (
	prefixNone    valuePrefix = iota
	prefixAnchor              // &name
	prefixAlias               // *name
	prefixLiteral             // |
	prefixFolded              // >
)

func prefixOf(value string) valuePrefix {
	if value == "" {
		return prefixNone
	}
	switch value[0] {
	case '&':
		return prefixAnchor
	case '*':
		return prefixAlias
	case '|':
		return prefixLiteral
	case '>':
		return prefixFolded
	}
	return prefixNone
}

// splitAnchor splits "&name rest" into the anchor name and the trimmed rest.
func splitAnchor(value string) (name, rest string) {
	body := value[1:]
	if i := strings.IndexAny(body, " \t"); i >= 0 {
		return body[:i], strings.TrimSpace(body[i:])
	}
	return body, ""
}

// aliasName returns the name referenced by "*name".
func aliasName(value string) string {
	return strings.TrimSpace(value[1:])
}
