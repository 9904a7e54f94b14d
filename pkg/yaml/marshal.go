package yaml

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

// bufferPool is a pool of bytes.Buffer instances to reduce allocations during marshaling.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns a buffer to the pool. Buffers larger than 64KB are
// dropped.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= 64*1024 {
		bufferPool.Put(buf)
	}
}

// Marshal returns the YAML encoding of v in block style with two-space
// indentation. Mapping keys keep their order.
//
// The output is written so that Parse reads it back as an equal value:
//
//   - floats always carry a fraction (1.0, not 1); NaN and infinities are
//     written .NaN, .inf and -.inf
//   - strings that would be read as another kind are quoted
//   - multi-line strings in mappings use literal block style
//   - a sequence nested directly in a sequence is written in flow style,
//     [a, b], since "- - a" is not part of the accepted syntax
//   - dates are written as 2006-01-02 at midnight UTC and as RFC 3339
//     otherwise
//
// Multi-line strings directly inside sequences cannot be read back.
func Marshal(v value.Value) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	enc := yamlv3.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNode(v, false)); err != nil {
		return nil, fmt.Errorf("yaml: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml: marshal: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// toYAMLNode builds the yaml.v3 node for v. inSequence is set for the items
// of a sequence.
func toYAMLNode(v value.Value, inSequence bool) *yamlv3.Node {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return scalarNode("!!bool", strconv.FormatBool(b))

	case value.KindInt:
		i, _ := v.AsInt()
		return scalarNode("!!int", strconv.FormatInt(i, 10))

	case value.KindFloat:
		f, _ := v.AsFloat()
		return scalarNode("!!float", formatFloat(f))

	case value.KindString:
		s, _ := v.AsString()
		n := scalarNode("!!str", s)
		if strings.Contains(s, "\n") && !inSequence {
			n.Style = yamlv3.LiteralStyle
		}
		return n

	case value.KindDate:
		t, _ := v.AsDate()
		return scalarNode("", formatDate(t))

	case value.KindSequence:
		n := &yamlv3.Node{Kind: yamlv3.SequenceNode, Tag: "!!seq"}
		if inSequence {
			n.Style = yamlv3.FlowStyle
		}
		for _, item := range v.Items() {
			n.Content = append(n.Content, toYAMLNode(item, true))
		}
		return n

	case value.KindMapping:
		m := v.Mapping()
		n := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
		if m.Len() == 0 {
			n.Style = yamlv3.FlowStyle
		}
		for key, item := range m.All() {
			n.Content = append(n.Content, scalarNode("!!str", key), toYAMLNode(item, false))
		}
		return n

	default:
		return scalarNode("!!null", "null")
	}
}

func scalarNode(tag, text string) *yamlv3.Node {
	return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: tag, Value: text}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".NaN"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatDate(t time.Time) string {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}
