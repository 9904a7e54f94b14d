package tokenizer

import (
	"strings"
)

// StripComment removes a trailing # comment from line. A # inside a quoted
// run is content, and a quote that is never closed protects the rest of
// the line. Lines without a comment are returned unchanged.
//
// Example:
//
//	StripComment(`name: "a # b" # note`) // `name: "a # b" `
func StripComment(line string) string {
	if !strings.Contains(line, "#") {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line))
	for _, token := range Tokens(line) {
		if token.Kind() == TokenComment {
			return sb.String()
		}
		sb.WriteString(token.ValueString())
	}
	return line
}

// StripComments applies StripComment to every line of text. Quote state
// does not carry over from one line to the next.
func StripComments(text string) string {
	if !strings.Contains(text, "#") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = StripComment(line)
	}
	return strings.Join(lines, "\n")
}
