package yaml

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

// FuzzParse tests the Parse function with random inputs
func FuzzParse(f *testing.F) {
	f.Add("key: value")
	f.Add("name: test\nage: 30")
	f.Add("items:\n  - a\n  - b")
	f.Add("base: &b\n  x: 1\nother: *b")
	f.Add("desc: |\n  a\n    b\n  c")
	f.Add("a:\n  b: 1\n c: 2")
	f.Add("- -\n  - x: [1, {y: 2}]")
	f.Add("\"unterminated: 'x # y")

	f.Fuzz(func(t *testing.T, data string) {
		r := Parse(data)
		if r.Value.Kind() != value.KindMapping && r.Value.Kind() != value.KindSequence {
			t.Fatalf("document is a %s", r.Value.Kind())
		}
		indentation := 0
		for _, e := range r.Errors {
			if e.Line < 1 {
				t.Fatalf("error without line: %q", e.Message)
			}
			if errors.Is(e, ErrInvalidIndentation) {
				indentation++
			}
		}
		if indentation > 1 {
			t.Fatalf("%d indentation errors", indentation)
		}
	})
}

// FuzzUnmarshal tests the Unmarshal function with random inputs
func FuzzUnmarshal(f *testing.F) {
	f.Add([]byte("key: value"))
	f.Add([]byte("name: test\ncount: 42"))

	f.Fuzz(func(t *testing.T, data []byte) {
		var result map[string]interface{}
		_ = Unmarshal(data, &result)
	})
}

// FuzzRoundTrip tests that arbitrary strings never disturb the keys before them
func FuzzRoundTrip(f *testing.F) {
	f.Add("test", int64(42))

	f.Fuzz(func(t *testing.T, str string, num int64) {
		v := value.MappingOf("num", value.Int(num), "str", value.String(str))

		out, err := Marshal(v)
		if err != nil {
			return
		}

		r := ParseBytes(out)
		got, ok := r.Value.Get("num")
		if !ok || !got.Equal(value.Int(num)) {
			t.Errorf("num did not survive the round trip:\n%s", out)
		}
	})
}
