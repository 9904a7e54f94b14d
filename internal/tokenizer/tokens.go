// Package tokenizer provides line-level lexing for the YAML subset using
// Shape's tokenizer framework, plus the indentation helpers the block
// structurer relies on.
package tokenizer

// Token kinds emitted by the line lexer. The lexer never fails: every rune
// of a line belongs to exactly one token, so concatenating token values
// reproduces the line.
const (
	TokenWhitespace = "Whitespace" // spaces and tabs
	TokenText       = "Text"       // any run of non-special characters
	TokenQuoted     = "Quoted"     // '...' or "..." including the quotes
	TokenOpenQuote  = "OpenQuote"  // quote never closed on this line, runs to end of line
	TokenComment    = "Comment"    // # ... to end of line
	TokenComma      = "Comma"      // ,
	TokenLBracket   = "LBracket"   // [
	TokenRBracket   = "RBracket"   // ]
	TokenLBrace     = "LBrace"     // {
	TokenRBrace     = "RBrace"     // }
	TokenNewline    = "Newline"    // \n or \r\n
)
