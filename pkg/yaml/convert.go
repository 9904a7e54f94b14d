package yaml

import (
	"slices"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

// ToNode converts a value tree to Shape's unified AST.
//
// Converts:
//   - null, bool, int, float, string, date → *ast.LiteralNode
//     (nil, bool, int64, float64, string, time.Time)
//   - sequence → *ast.ObjectNode with numeric string keys "0", "1", ...
//   - mapping → *ast.ObjectNode
//
// AST objects are unordered, so mapping key order is not preserved.
func ToNode(v value.Value) ast.SchemaNode {
	pos := ast.Position{}

	switch v.Kind() {
	case value.KindSequence:
		items := v.Items()
		props := make(map[string]ast.SchemaNode, len(items))
		for i, item := range items {
			props[strconv.Itoa(i)] = ToNode(item)
		}
		return ast.NewObjectNode(props, pos)

	case value.KindMapping:
		m := v.Mapping()
		props := make(map[string]ast.SchemaNode, m.Len())
		for key, item := range m.All() {
			props[key] = ToNode(item)
		}
		return ast.NewObjectNode(props, pos)

	default:
		return ast.NewLiteralNode(v.Interface(), pos)
	}
}

// FromNode converts an AST node back to a value tree.
//
// An *ast.ObjectNode whose keys are exactly "0".."n-1" becomes a sequence;
// any other object becomes a mapping with its keys in sorted order. An
// empty object becomes an empty mapping. Literal values of unknown Go types
// become null.
func FromNode(node ast.SchemaNode) value.Value {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return literalValue(n.Value())

	case *ast.ObjectNode:
		props := n.Properties()

		if isSequence(props) {
			items := make([]value.Value, len(props))
			for i := range items {
				items[i] = FromNode(props[strconv.Itoa(i)])
			}
			return value.Sequence(items...)
		}

		keys := make([]string, 0, len(props))
		for key := range props {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		m := value.NewMapping()
		for _, key := range keys {
			m.Set(key, FromNode(props[key]))
		}
		return value.FromMapping(m)

	default:
		return value.Null()
	}
}

func literalValue(v interface{}) value.Value {
	converted, err := value.FromInterface(v)
	if err != nil {
		return value.Null()
	}
	return converted
}

// isSequence reports whether props uses the numeric keys of a sequence.
func isSequence(props map[string]ast.SchemaNode) bool {
	if len(props) == 0 {
		return false
	}

	for i := 0; i < len(props); i++ {
		if _, ok := props[strconv.Itoa(i)]; !ok {
			return false
		}
	}
	return true
}

// NodeToInterface converts an AST node to native Go types.
//
// Converts:
//   - *ast.LiteralNode → primitives (string, int64, float64, bool, time.Time, nil)
//   - *ast.ObjectNode (sequence) → []interface{}
//   - *ast.ObjectNode (mapping) → map[string]interface{}
//
// Example:
//
//	node := yaml.ToNode(yaml.Parse("name: Alice\ntags:\n  - go\n  - yaml").Value)
//	data := yaml.NodeToInterface(node)
//	// data is map[string]interface{}{"name":"Alice", "tags":[]interface{}{"go","yaml"}}
func NodeToInterface(node ast.SchemaNode) interface{} {
	return FromNode(node).Interface()
}

// ReleaseTree recursively releases all nodes in an AST tree back to their pools.
// Call it once a tree returned by ToNode is no longer used.
func ReleaseTree(node ast.SchemaNode) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *ast.LiteralNode:
		ast.ReleaseLiteralNode(n)

	case *ast.ObjectNode:
		for _, child := range n.Properties() {
			ReleaseTree(child)
		}
		ast.ReleaseObjectNode(n)
	}
}
