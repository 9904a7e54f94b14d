package parser

import (
	"strings"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

// collector accumulates the value of one sibling list. It starts as a
// mapping and turns into a sequence at the first item line, dropping the
// entries gathered so far.
type collector struct {
	seq     bool
	entries *value.Mapping
	items   []value.Value
	element *value.Mapping // element opened by the last item marker
}

func newCollector() *collector {
	return &collector{entries: value.NewMapping()}
}

func (c *collector) toSequence() {
	if c.seq {
		return
	}
	c.seq = true
	c.entries = nil
	c.items = []value.Value{}
}

// openElement appends a new mapping element and makes it the target of the
// entry lines that follow.
func (c *collector) openElement() *value.Mapping {
	c.toSequence()
	m := value.NewMapping()
	c.items = append(c.items, value.FromMapping(m))
	c.element = m
	return m
}

func (c *collector) appendItem(v value.Value) {
	c.toSequence()
	c.items = append(c.items, v)
	c.element = nil
}

// target returns the mapping a plain entry line writes to. In a sequence
// without an open element the entry continues the last mapping item, as
// happens when a nested block inside an item is followed by more keys of
// that item. Nil means the entry has nowhere to go.
func (c *collector) target() *value.Mapping {
	if c.element != nil {
		return c.element
	}
	if !c.seq {
		return c.entries
	}
	if n := len(c.items); n > 0 {
		if m, ok := c.items[n-1].AsMapping(); ok {
			return m
		}
	}
	return nil
}

// absorb merges the value of a line-less block's children.
func (c *collector) absorb(v value.Value) {
	switch v.Kind() {
	case value.KindSequence:
		c.toSequence()
		c.items = append(c.items, v.Items()...)
		c.element = nil
	case value.KindMapping:
		if c.seq {
			c.appendItem(v)
			return
		}
		for key, item := range v.Mapping().All() {
			c.entries.Set(key, item)
		}
	}
}

func (c *collector) value() value.Value {
	if c.seq {
		return value.Sequence(c.items...)
	}
	return value.FromMapping(c.entries)
}

// analyzer turns a block tree into a value.
type analyzer struct {
	ctx *parseContext
}

// siblings analyses a list of sibling blocks. The first unconsumed block
// fixes the level; every unconsumed block at that level is analysed once,
// in order, and marked consumed. Blocks at other levels are left for the
// caller that owns them.
func (a *analyzer) siblings(blocks []*Block) value.Value {
	c := newCollector()
	level, started := 0, false

	for _, b := range blocks {
		if a.ctx.consumed[b] {
			continue
		}
		if started && b.Level != level {
			continue
		}
		started, level = true, b.Level
		a.ctx.take(b)
		a.block(b, c)
	}

	return c.value()
}

func (a *analyzer) block(b *Block, c *collector) {
	c.element = nil

	// Only the body block can be empty: its content started indented.
	if len(b.Lines) == 0 {
		c.absorb(a.siblings(b.Children))
		return
	}

	for i, line := range b.Lines {
		last := i == len(b.Lines)-1
		info := classify(line.Text)

		switch info.kind {
		case lineItemEntry:
			a.entry(b, line, info, last, c.openElement())

		case lineEntry:
			target := c.target()
			if target == nil {
				a.ctx.logger.Debug().Int("line", line.Number).Str("key", info.key).
					Msg("dropping mapping entry inside sequence")
				continue
			}
			a.entry(b, line, info, last, target)

		case lineBareItem:
			if last && len(a.ctx.pending(b.Children)) > 0 {
				c.appendItem(a.siblings(b.Children))
			} else {
				c.openElement()
			}

		case lineItem:
			if v, ok := a.itemValue(line, info); ok {
				c.appendItem(v)
			} else {
				c.element = nil
			}

		default:
			a.ctx.logger.Debug().Int("line", line.Number).Str("text", line.Text).
				Msg("ignoring unrecognised line")
		}
	}
}

func (a *analyzer) entry(b *Block, line Line, info lineInfo, last bool, target *value.Mapping) {
	if v, ok := a.entryValue(b, line, info, last); ok {
		target.Set(info.key, v)
	}
}

// entryValue computes the value of a mapping entry. It reports false when
// the entry must be omitted.
func (a *analyzer) entryValue(b *Block, line Line, info lineInfo, last bool) (value.Value, bool) {
	if !info.hasValue {
		return a.nested(b, last), true
	}

	switch prefixOf(info.value) {
	case prefixAnchor:
		name, rest := splitAnchor(info.value)
		var v value.Value
		if rest != "" {
			v = Coerce(rest)
		} else {
			v = a.nested(b, last)
		}
		a.ctx.defineAnchor(name, v)
		return v, true

	case prefixAlias:
		return a.ctx.resolveAlias(aliasName(info.value), line.Number)

	case prefixLiteral:
		return value.String(a.blockScalar(b, last, literalText)), true

	case prefixFolded:
		return value.String(a.blockScalar(b, last, foldedText)), true

	default:
		return Coerce(info.value), true
	}
}

func (a *analyzer) itemValue(line Line, info lineInfo) (value.Value, bool) {
	if prefixOf(info.value) == prefixAlias {
		return a.ctx.resolveAlias(aliasName(info.value), line.Number)
	}
	return Coerce(info.value), true
}

// nested analyses the children of b on behalf of its last line. Children
// always follow the last line of their parent, so earlier lines own no
// nested content and get an empty mapping.
func (a *analyzer) nested(b *Block, last bool) value.Value {
	if !last {
		return value.FromMapping(value.NewMapping())
	}
	return a.siblings(b.Children)
}

// blockScalar consumes the next unconsumed children of b that share the
// first one's level and renders them as one string.
func (a *analyzer) blockScalar(b *Block, last bool, render func(*Block) string) string {
	if !last {
		return ""
	}

	var parts []string
	level, started := 0, false
	for _, child := range a.ctx.pending(b.Children) {
		if started && child.Level != level {
			continue
		}
		started, level = true, child.Level
		a.ctx.take(child)
		parts = append(parts, render(child))
	}
	return strings.Join(parts, "\n")
}

// literalText joins the lines of b with newlines, followed by the literal
// text of its descendants on their own lines.
func literalText(b *Block) string {
	parts := lineTexts(b)
	for _, child := range b.Children {
		parts = append(parts, literalText(child))
	}
	return strings.Join(parts, "\n")
}

// foldedText joins the lines of b with spaces. Each descendant block forms
// its own fold group, separated by a newline.
func foldedText(b *Block) string {
	chunks := []string{strings.Join(lineTexts(b), " ")}
	for _, child := range b.Children {
		chunks = append(chunks, foldedText(child))
	}
	return strings.Join(chunks, "\n")
}

func lineTexts(b *Block) []string {
	out := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		out[i] = line.Text
	}
	return out
}
