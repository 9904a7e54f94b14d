package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the kind of a recorded Error.
var (
	// ErrInvalidIndentation marks a line whose indentation matches no
	// enclosing level. It stops block structuring.
	ErrInvalidIndentation = errors.New("invalid indentation")

	// ErrUnknownReference marks an alias naming an anchor that was not
	// defined earlier in the document.
	ErrUnknownReference = errors.New("unknown reference")
)

// Error is a diagnostic recorded while parsing. Errors are collected, never
// returned as a failure of the parse call itself.
type Error struct {
	Message string // human readable message
	Line    int    // 1-based source line
	kind    error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the sentinel for the error kind, for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.kind
}

func newIndentationError(line int, text string) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid indentation at line %d: %s", line, text),
		Line:    line,
		kind:    ErrInvalidIndentation,
	}
}

func newReferenceError(line int, name string) *Error {
	return &Error{
		Message: fmt.Sprintf("Reference '%s' not found!", name),
		Line:    line,
		kind:    ErrUnknownReference,
	}
}

// ErrorList is the ordered list of diagnostics of one parse call.
type ErrorList []*Error

// Err joins the list into a single error, or returns nil when it is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Messages returns the message of every error in order.
func (l ErrorList) Messages() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Message
	}
	return out
}
