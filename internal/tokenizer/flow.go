package tokenizer

import (
	"strings"
)

// SplitFlow splits the inner text of an inline collection on top-level
// commas. A comma is top level when it is outside any quoted run and the
// count of open [ and { minus closing ] and } is zero. Chunks are returned
// untrimmed; an empty or blank final chunk is dropped.
//
// Example:
//
//	SplitFlow(`1, "a,b", [2, 3]`) // ["1", ` "a,b"`, " [2, 3]"]
func SplitFlow(inner string) []string {
	var (
		chunks []string
		sb     strings.Builder
		depth  int
	)

	for _, token := range Tokens(inner) {
		switch token.Kind() {
		case TokenLBracket, TokenLBrace:
			depth++
		case TokenRBracket, TokenRBrace:
			depth--
		case TokenComma:
			if depth == 0 {
				chunks = append(chunks, sb.String())
				sb.Reset()
				continue
			}
		}
		sb.WriteString(token.ValueString())
	}

	if last := sb.String(); strings.TrimSpace(last) != "" {
		chunks = append(chunks, last)
	}
	return chunks
}
