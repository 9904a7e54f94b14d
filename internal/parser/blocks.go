package parser

import (
	"strings"

	"github.com/shapestone/shape-yamlite/internal/tokenizer"
)

// rootLevel is the sentinel level of the root block.
const rootLevel = -1

// Line is a trimmed content line with its 1-based source line number.
type Line struct {
	Text   string
	Number int
}

// Block groups consecutive lines of one indentation level. Children always
// have a greater level than their parent. Parent is a non-owning back
// reference used while structuring.
type Block struct {
	Level    int
	Lines    []Line
	Children []*Block
	Parent   *Block
}

func newBlock(level int) *Block {
	return &Block{Level: level}
}

func (b *Block) addChild(child *Block) {
	child.Parent = b
	b.Children = append(b.Children, child)
}

// stackEntry records a block opened at a level. The stack only grows: a
// dedent searches it top-down for the most recent entry at the new level.
type stackEntry struct {
	level int
	block *Block
}

// buildBlocks structures comment-stripped text into a block tree.
//
// The root has level -1 and starts with one body block at level 0. For each
// retained line:
//   - a deeper level opens a child of the current block
//   - the same level appends to the current block
//   - a shallower level opens a new block under the parent of the most
//     recent block opened at that level
//
// A shallower level that matches no opened block is fatal: the tree built
// so far is returned together with the indentation error.
func buildBlocks(text string) (*Block, *Error) {
	root := newBlock(rootLevel)
	current := newBlock(0)
	root.addChild(current)

	stack := []stackEntry{{level: 0, block: current}}
	curLevel := 0

	for i, raw := range strings.Split(text, "\n") {
		if tokenizer.IsSkippable(raw) {
			continue
		}

		level := tokenizer.Level(raw)
		switch {
		case level > curLevel:
			child := newBlock(level)
			current.addChild(child)
			current = child
			stack = append(stack, stackEntry{level: level, block: child})

		case level < curLevel:
			found := false
			for k := len(stack) - 1; k >= 0; k-- {
				if stack[k].level != level {
					continue
				}
				sibling := newBlock(level)
				if parent := stack[k].block.Parent; parent != nil {
					parent.addChild(sibling)
				}
				current = sibling
				stack = append(stack, stackEntry{level: level, block: sibling})
				found = true
				break
			}
			if !found {
				return root, newIndentationError(i+1, raw)
			}
		}

		current.Lines = append(current.Lines, Line{
			Text:   strings.TrimSpace(raw),
			Number: i + 1,
		})
		curLevel = level
	}

	return root, nil
}
