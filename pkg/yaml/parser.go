// Package yaml parses a small, indentation-driven subset of YAML into a
// typed value tree.
//
// The supported subset covers block mappings and sequences, inline
// [flow, sequences] and {flow: mappings}, anchors (&name) and aliases
// (*name), literal (|) and folded (>) block scalars, and # comments.
// Scalars are typed by a fixed set of rules: keywords, quoted strings,
// floats, integers, dates, a single inline "key: value" pair, flow
// collections, and finally plain strings.
//
// # Diagnostics
//
// Parsing never fails outright. Problems are recorded in Result.Errors and
// the parts of the document that could be read are returned in
// Result.Value:
//
//   - an undefined alias records "Reference '<name>' not found!" and the
//     key or item using it is left out
//   - a line whose indentation matches no enclosing level records
//     "Invalid indentation at line <n>: <line>" and the rest of the
//     document is ignored
//
// Use Result.Err or Validate when a single error value is more convenient.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call parses with its own anchor table and error list.
//
//	go func() { yaml.Parse(input1) }()
//	go func() { yaml.Parse(input2) }()
//
// # Example
//
//	r := yaml.Parse(`
//	defaults: &d
//	  timeout: 30
//	service:
//	  name: api
//	  opts: *d
//	`)
//	if err := r.Err(); err != nil {
//	    // handle diagnostics
//	}
//	timeout, _ := r.Value.Lookup("service", "opts", "timeout")
package yaml

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/shapestone/shape-yamlite/internal/parser"
	"github.com/shapestone/shape-yamlite/pkg/value"
)

// Result is the outcome of a parse: the document value, the diagnostics
// recorded while parsing, the elapsed time and the anchor table.
type Result = parser.Result

// Error is a single diagnostic with its 1-based source line.
type Error = parser.Error

// ErrorList is the ordered list of diagnostics of one parse.
type ErrorList = parser.ErrorList

// Sentinels matched by errors.Is against an Error or Result.Err().
var (
	ErrInvalidIndentation = parser.ErrInvalidIndentation
	ErrUnknownReference   = parser.ErrUnknownReference
)

// Parse parses a YAML document from a string.
//
// The returned Value is a mapping, or a sequence when the top level of the
// document is a list. An empty document yields an empty mapping.
//
// Example:
//
//	r := yaml.Parse("name: Alice\nage: 30")
//	name, _ := r.Value.Get("name")
//	s, _ := name.AsString() // "Alice"
func Parse(input string, opts ...Option) *Result {
	o := buildOptions(opts)
	return parser.NewParser(input, o.parserOptions()...).Parse()
}

// ParseBytes parses a YAML document from a byte slice.
func ParseBytes(data []byte, opts ...Option) *Result {
	return Parse(string(data), opts...)
}

// ParseReader reads r to the end and parses its content.
//
// The error reports a failure to read r. Problems in the document itself are
// returned in Result.Errors.
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("yaml: read input: %w", err)
	}
	return ParseBytes(data, opts...), nil
}

// ParseFile reads the file at path from fs and parses it. A nil fs reads
// from the operating system.
//
// A file that cannot be read is treated as an empty document: the result is
// an empty mapping with no errors, and the read failure is logged at warn
// level through the configured logger.
//
// Example:
//
//	fs := afero.NewOsFs()
//	r := yaml.ParseFile("config.yaml", fs, yaml.WithLogger(logger))
func ParseFile(path string, fs afero.Fs, opts ...Option) *Result {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	o := buildOptions(opts)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		o.logger.Warn().Err(err).Str("path", path).Msg("yaml file could not be read, using empty document")
		return &Result{
			Value:   value.FromMapping(value.NewMapping()),
			Anchors: map[string]value.Value{},
		}
	}
	return parser.NewParser(string(data), o.parserOptions()...).Parse()
}

// Validate parses input and returns its diagnostics joined into one error,
// or nil when the document parsed cleanly.
//
// Example:
//
//	if err := yaml.Validate(doc); err != nil {
//	    fmt.Printf("Invalid YAML: %v\n", err)
//	}
func Validate(input string) error {
	return Parse(input).Err()
}

// ParseScalar types a single scalar the way values in a document are typed.
//
//	yaml.ParseScalar("42")         // int 42
//	yaml.ParseScalar("[a, b]")     // sequence ["a", "b"]
//	yaml.ParseScalar("2011-10-05") // date
func ParseScalar(raw string) value.Value {
	return parser.Coerce(raw)
}
