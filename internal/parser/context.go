package parser

import (
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

// parseContext holds the mutable state of a single parse call. It is
// created fresh by Parse and threaded through every analyzer step, so
// concurrent parse calls never share anchors, errors, or cursors.
type parseContext struct {
	anchors  map[string]value.Value
	errors   ErrorList
	consumed map[*Block]bool
	logger   zerolog.Logger
}

func newParseContext(logger zerolog.Logger) *parseContext {
	return &parseContext{
		anchors:  make(map[string]value.Value),
		consumed: make(map[*Block]bool),
		logger:   logger,
	}
}

func (c *parseContext) addError(e *Error) {
	c.errors = append(c.errors, e)
	c.logger.Warn().Int("line", e.Line).Msg(e.Message)
}

// defineAnchor stores a shallow copy of v under name. Redefinition
// replaces the earlier value for aliases that follow.
func (c *parseContext) defineAnchor(name string, v value.Value) {
	c.anchors[name] = v.Clone()
}

// resolveAlias returns a shallow copy of the anchored value, or records a
// reference error for line.
func (c *parseContext) resolveAlias(name string, line int) (value.Value, bool) {
	v, ok := c.anchors[name]
	if !ok {
		c.addError(newReferenceError(line, name))
		return value.Null(), false
	}
	return v.Clone(), true
}

// take marks b consumed and reports whether it was still available.
func (c *parseContext) take(b *Block) bool {
	if c.consumed[b] {
		return false
	}
	c.consumed[b] = true
	return true
}

// pending returns the blocks of list not yet consumed.
func (c *parseContext) pending(list []*Block) []*Block {
	var out []*Block
	for _, b := range list {
		if !c.consumed[b] {
			out = append(out, b)
		}
	}
	return out
}
