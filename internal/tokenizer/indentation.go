package tokenizer

import (
	"strings"
)

// Level measures the indentation of a line: the length of its leading run
// of whitespace and '-' characters. Sequence markers count toward the
// level, so the entries of "- name: a" and a following "  size: 1" share
// level 2.
//
// Example:
//
//	Level("key: v")      // 0
//	Level("    x: 1")    // 4
//	Level("  - item")    // 4
func Level(line string) int {
	n := 0
	for n < len(line) {
		switch line[n] {
		case ' ', '\t', '-', '\v', '\f', '\r':
			n++
		default:
			return n
		}
	}
	return n
}

// IsSkippable reports whether a line carries no structure: blank lines,
// comment-only lines, and document markers (--- and ...) at the start of
// a line. Skipped lines never affect level tracking.
func IsSkippable(line string) bool {
	if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "...") {
		return true
	}
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
