// Package parser implements the indentation-driven YAML subset parser.
//
// Parsing runs in three stages:
//
//  1. Comment stripping: trailing # comments are removed line by line,
//     respecting quoted runs.
//  2. Block structuring: lines are grouped into a tree of blocks by
//     indentation level.
//  3. Semantic analysis: blocks are interpreted as mappings and sequences,
//     resolving anchors, aliases and block scalars, with plain scalars
//     typed by Coerce.
//
// Diagnostics are collected in the Result instead of being returned as an
// error, so a document with problems still yields the part that parsed.
package parser

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shapestone/shape-yamlite/internal/tokenizer"
	"github.com/shapestone/shape-yamlite/pkg/value"
)

// Result is the outcome of one parse call.
type Result struct {
	Value    value.Value            // parsed document, a mapping or a sequence
	Errors   ErrorList              // diagnostics in the order they were found
	Duration time.Duration          // wall-clock time of the call
	Anchors  map[string]value.Value // anchor table at the end of the call
}

// Err returns the errors joined into one, or nil.
func (r *Result) Err() error {
	return r.Errors.Err()
}

// DurationMs returns Duration in milliseconds.
func (r *Result) DurationMs() float64 {
	return float64(r.Duration) / float64(time.Millisecond)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser parses one input. A Parser keeps no state between Parse calls.
type Parser struct {
	input  string
	logger zerolog.Logger
}

// NewParser creates a parser for input.
func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		input:  input,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the pipeline over the input with a fresh context.
//
// An indentation error stops block structuring at the offending line; the
// content before it is still analysed and returned.
func (p *Parser) Parse() *Result {
	start := time.Now()
	ctx := newParseContext(p.logger)

	text := strings.ReplaceAll(p.input, "\r\n", "\n")
	text = tokenizer.StripComments(text)

	root, structErr := buildBlocks(text)
	if structErr != nil {
		ctx.addError(structErr)
	}

	a := &analyzer{ctx: ctx}
	doc := a.siblings(root.Children)

	result := &Result{
		Value:    doc,
		Errors:   ctx.errors,
		Duration: time.Since(start),
		Anchors:  ctx.anchors,
	}

	p.logger.Debug().
		Int("bytes", len(p.input)).
		Int("errors", len(result.Errors)).
		Int("anchors", len(result.Anchors)).
		Dur("duration", result.Duration).
		Msg("yaml document parsed")

	return result
}
