// Package value defines the typed value tree produced by the parser.
//
// A Value is a tagged union over null, bool, int, float, string, date,
// sequence and mapping. Consumers switch on Kind() and use the typed
// accessors, each of which reports whether the value holds that kind.
//
// Mappings are ordered: keys keep their first insertion position and the
// last write for a key wins.
//
//	v := value.MappingOf("name", value.String("Alice"), "age", value.Int(30))
//	age, ok := v.Mapping().Get("age")
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDate
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindDate:     "date",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a node of the parsed document. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
	seq  []Value
	m    *Mapping
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Date returns a date/time value.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// Sequence returns a sequence holding items. The slice is not copied.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// FromMapping wraps m as a Value. A nil m becomes an empty mapping.
func FromMapping(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, m: m}
}

// MappingOf builds a mapping value from alternating keys and values.
// It panics if kv is malformed; it exists for literals in code and tests.
func MappingOf(kv ...any) Value {
	if len(kv)%2 != 0 {
		panic("value: MappingOf needs key/value pairs")
	}
	m := NewMapping()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("value: MappingOf key %d is %T, want string", i/2, kv[i]))
		}
		v, ok := kv[i+1].(Value)
		if !ok {
			panic(fmt.Sprintf("value: MappingOf value for %q is %T, want Value", key, kv[i+1]))
		}
		m.Set(key, v)
	}
	return FromMapping(m)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsDate returns the time held by v.
func (v Value) AsDate() (time.Time, bool) { return v.t, v.kind == KindDate }

// AsSequence returns the items held by v. The slice is shared with v.
func (v Value) AsSequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// AsMapping returns the mapping held by v. The mapping is shared with v.
func (v Value) AsMapping() (*Mapping, bool) { return v.m, v.kind == KindMapping }

// Mapping returns the mapping held by v, or nil.
func (v Value) Mapping() *Mapping {
	if v.kind != KindMapping {
		return nil
	}
	return v.m
}

// Items returns the sequence items held by v, or nil.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Len returns the number of entries of a mapping or items of a sequence,
// and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return v.m.Len()
	default:
		return 0
	}
}

// Get looks up key in a mapping value. It reports false for non-mappings.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	return v.m.Get(key)
}

// Index returns item i of a sequence value.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Lookup walks a path of mapping keys and sequence indexes, e.g.
// Lookup("servers", "0", "host").
func (v Value) Lookup(path ...string) (Value, bool) {
	cur := v
	for _, seg := range path {
		switch cur.kind {
		case KindMapping:
			next, ok := cur.m.Get(seg)
			if !ok {
				return Value{}, false
			}
			cur = next
		case KindSequence:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return Value{}, false
			}
			next, ok := cur.Index(i)
			if !ok {
				return Value{}, false
			}
			cur = next
		default:
			return Value{}, false
		}
	}
	return cur, true
}

// Clone returns a shallow copy: a new top-level mapping or sequence whose
// entries are the same values as v's. Nested collections stay shared.
// Scalars are returned unchanged.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq))
		copy(items, v.seq)
		return Value{kind: KindSequence, seq: items}
	case KindMapping:
		return Value{kind: KindMapping, m: v.m.Clone()}
	default:
		return v
	}
}

// DeepClone returns a copy of v that shares no collections with it.
func (v Value) DeepClone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.DeepClone()
		}
		return Value{kind: KindSequence, seq: items}
	case KindMapping:
		m := newMappingCap(v.m.Len())
		for key, item := range v.m.All() {
			m.Set(key, item.DeepClone())
		}
		return Value{kind: KindMapping, m: m}
	default:
		return v
	}
}

// Equal reports whether v and other have the same kind and contents.
// Mapping comparison is order sensitive; NaN equals NaN.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindDate:
		return v.t.Equal(other.t)
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.m.Equal(other.m)
	}
	return false
}

// Interface converts v to plain Go values:
//
//	null     -> nil
//	bool     -> bool
//	int      -> int64
//	float    -> float64
//	string   -> string
//	date     -> time.Time
//	sequence -> []interface{}
//	mapping  -> map[string]interface{}
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindDate:
		return v.t
	case KindSequence:
		arr := make([]interface{}, len(v.seq))
		for i, item := range v.seq {
			arr[i] = item.Interface()
		}
		return arr
	case KindMapping:
		out := make(map[string]interface{}, v.m.Len())
		for key, item := range v.m.All() {
			out[key] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders v in a compact flow-like form for debugging.
func (v Value) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v Value) writeTo(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			sb.WriteString(".NaN")
		case math.IsInf(v.f, 1):
			sb.WriteString(".inf")
		case math.IsInf(v.f, -1):
			sb.WriteString("-.inf")
		default:
			sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindDate:
		sb.WriteString(v.t.Format(time.RFC3339Nano))
	case KindSequence:
		sb.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.writeTo(sb)
		}
		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')
		i := 0
		for key, item := range v.m.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(key)
			sb.WriteString(": ")
			item.writeTo(sb)
			i++
		}
		sb.WriteByte('}')
	}
}
