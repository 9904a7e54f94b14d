package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates the line lexer.
//
// Ordering is critical:
// 1. Whitespace (kept as tokens so lines can be rebuilt verbatim)
// 2. Quoted runs, closed before unterminated
// 3. Comments
// 4. Flow punctuation
// 5. Newlines
// 6. Text runs
// 7. Single-rune fallback (last, matches anything else)
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		WhitespaceMatcher(),

		QuotedMatcher('"'),
		QuotedMatcher('\''),
		OpenQuoteMatcher(),

		CommentMatcher(),

		tokenizer.CharMatcherFunc(TokenComma, ','),
		tokenizer.CharMatcherFunc(TokenLBracket, '['),
		tokenizer.CharMatcherFunc(TokenRBracket, ']'),
		tokenizer.CharMatcherFunc(TokenLBrace, '{'),
		tokenizer.CharMatcherFunc(TokenRBrace, '}'),

		NewlineMatcher(),

		TextMatcher(),
		AnyRuneMatcher(),
	)
}

// Tokens lexes input and returns every token in order.
func Tokens(input string) []tokenizer.Token {
	tok := NewTokenizer()
	tok.Initialize(input)

	var tokens []tokenizer.Token
	for {
		token, ok := tok.NextToken()
		if !ok || token == nil {
			break
		}
		tokens = append(tokens, *token)
	}
	return tokens
}

// isSpecial reports whether r starts a token other than Text.
func isSpecial(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '"', '\'', '#', ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// WhitespaceMatcher matches runs of spaces and tabs (not newlines).
func WhitespaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != ' ' && r != '\t') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenWhitespace, value)
	}
}

// QuotedMatcher matches a run opened and closed by quote on the same line.
// No escape sequences are recognised: the run ends at the next quote.
func QuotedMatcher(quote rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.NextChar()
		if !ok || r != quote {
			return nil
		}
		value := []rune{r}

		for {
			r, ok := stream.NextChar()
			if !ok || r == '\n' || r == '\r' {
				return nil
			}
			value = append(value, r)
			if r == quote {
				return tokenizer.NewToken(TokenQuoted, value)
			}
		}
	}
}

// OpenQuoteMatcher matches a quote that is never closed on its line.
// The run extends to the end of the line.
func OpenQuoteMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || (r != '"' && r != '\'') {
			return nil
		}
		return tokenizer.NewToken(TokenOpenQuote, consumeLine(stream))
	}
}

// CommentMatcher matches # to the end of the line.
func CommentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '#' {
			return nil
		}
		return tokenizer.NewToken(TokenComment, consumeLine(stream))
	}
}

// NewlineMatcher matches \n or \r\n.
func NewlineMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.NextChar()
		if !ok {
			return nil
		}
		if r == '\n' {
			return tokenizer.NewToken(TokenNewline, []rune{r})
		}
		if r != '\r' {
			return nil
		}
		next, ok := stream.NextChar()
		if !ok || next != '\n' {
			return nil
		}
		return tokenizer.NewToken(TokenNewline, []rune{'\r', '\n'})
	}
}

// TextMatcher matches a run of characters that start no other token.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || isSpecial(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}

// AnyRuneMatcher consumes a single rune as Text. It keeps the lexer total
// for inputs such as a lone carriage return.
func AnyRuneMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.NextChar()
		if !ok {
			return nil
		}
		return tokenizer.NewToken(TokenText, []rune{r})
	}
}

// consumeLine consumes runes up to, not including, the next line break.
func consumeLine(stream tokenizer.Stream) []rune {
	var value []rune
	for {
		r, ok := stream.PeekChar()
		if !ok || r == '\n' || r == '\r' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}
	return value
}
