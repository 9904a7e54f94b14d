package value

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// MappingBuilder provides a fluent API for building mapping values.
type MappingBuilder struct {
	m   *Mapping
	err error
}

// NewMappingBuilder creates an empty mapping builder.
func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{m: NewMapping()}
}

// Set adds a key-value pair. v may be a Value or any type accepted by
// FromInterface.
func (b *MappingBuilder) Set(key string, v interface{}) *MappingBuilder {
	val, err := FromInterface(v)
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("mapping key %s: %w", key, err)
	}
	b.m.Set(key, val)
	return b
}

// SetMapping adds a nested mapping.
func (b *MappingBuilder) SetMapping(key string, fn func(*MappingBuilder)) *MappingBuilder {
	nested := NewMappingBuilder()
	fn(nested)
	if nested.err != nil && b.err == nil {
		b.err = nested.err
	}
	b.m.Set(key, FromMapping(nested.m))
	return b
}

// SetSequence adds a nested sequence.
func (b *MappingBuilder) SetSequence(key string, fn func(*SequenceBuilder)) *MappingBuilder {
	nested := NewSequenceBuilder()
	fn(nested)
	if nested.err != nil && b.err == nil {
		b.err = nested.err
	}
	b.m.Set(key, Sequence(nested.items...))
	return b
}

// Build returns the mapping value.
func (b *MappingBuilder) Build() Value {
	return FromMapping(b.m)
}

// Err returns the first conversion error, if any.
func (b *MappingBuilder) Err() error { return b.err }

// SequenceBuilder provides a fluent API for building sequence values.
type SequenceBuilder struct {
	items []Value
	err   error
}

// NewSequenceBuilder creates an empty sequence builder.
func NewSequenceBuilder() *SequenceBuilder {
	return &SequenceBuilder{items: []Value{}}
}

// Add appends a value.
func (b *SequenceBuilder) Add(v interface{}) *SequenceBuilder {
	val, err := FromInterface(v)
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("sequence element %d: %w", len(b.items), err)
	}
	b.items = append(b.items, val)
	return b
}

// AddMapping appends a nested mapping.
func (b *SequenceBuilder) AddMapping(fn func(*MappingBuilder)) *SequenceBuilder {
	nested := NewMappingBuilder()
	fn(nested)
	if nested.err != nil && b.err == nil {
		b.err = nested.err
	}
	b.items = append(b.items, FromMapping(nested.m))
	return b
}

// AddSequence appends a nested sequence.
func (b *SequenceBuilder) AddSequence(fn func(*SequenceBuilder)) *SequenceBuilder {
	nested := NewSequenceBuilder()
	fn(nested)
	if nested.err != nil && b.err == nil {
		b.err = nested.err
	}
	b.items = append(b.items, Sequence(nested.items...))
	return b
}

// Build returns the sequence value.
func (b *SequenceBuilder) Build() Value {
	return Sequence(b.items...)
}

// Err returns the first conversion error, if any.
func (b *SequenceBuilder) Err() error { return b.err }

// FromInterface converts native Go values to a Value.
//
// Converts:
//   - nil → null
//   - Value, *Mapping → as is
//   - bool, string, time.Time → matching scalar
//   - int, int64, int32, etc → int
//   - float64, float32 → float
//   - []interface{}, []string → sequence
//   - map[string]interface{} → mapping (keys sorted)
func FromInterface(v interface{}) (Value, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case Value:
		return val, nil
	case *Mapping:
		return FromMapping(val), nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case time.Time:
		return Date(val), nil

	case int:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case int32:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case uint:
		return Int(int64(val)), nil
	case uint64:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint8:
		return Int(int64(val)), nil

	case float64:
		return Float(val), nil
	case float32:
		return Float(float64(val)), nil

	case []interface{}:
		items := make([]Value, 0, len(val))
		for i, item := range val {
			itemVal, err := FromInterface(item)
			if err != nil {
				return Null(), fmt.Errorf("sequence element %d: %w", i, err)
			}
			items = append(items, itemVal)
		}
		return Sequence(items...), nil
	case []string:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = String(item)
		}
		return Sequence(items...), nil

	case map[string]interface{}:
		m := newMappingCap(len(val))
		for _, key := range slices.Sorted(maps.Keys(val)) {
			itemVal, err := FromInterface(val[key])
			if err != nil {
				return Null(), fmt.Errorf("mapping key %s: %w", key, err)
			}
			m.Set(key, itemVal)
		}
		return FromMapping(m), nil

	default:
		return Null(), fmt.Errorf("unsupported type: %T", v)
	}
}
