package tokenizer

import (
	"reflect"
	"testing"
)

// TestStripComment tests comment removal on single lines
func TestStripComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no comment", "key: value", "key: value"},
		{"trailing comment", "key: value # note", "key: value "},
		{"comment only", "# just a comment", ""},
		{"indented comment", "   # note", "   "},
		{"hash in double quotes", `key: "a # b"`, `key: "a # b"`},
		{"hash in single quotes", `key: 'a # b'`, `key: 'a # b'`},
		{"comment after quotes", `key: "a # b" # c`, `key: "a # b" `},
		{"other quote inside", `key: "it's" # c`, `key: "it's" `},
		{"unclosed quote protects", `key: 'a # b`, `key: 'a # b`},
		{"hash without space", "key: a#b", "key: a"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComment(tt.input); got != tt.expected {
				t.Errorf("StripComment(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestStripComments tests that quote state does not cross lines
func TestStripComments(t *testing.T) {
	input := "a: 'open\nb: 1 # drop\n# whole\nc: \"x#y\""
	expected := "a: 'open\nb: 1 \n\nc: \"x#y\""

	if got := StripComments(input); got != expected {
		t.Errorf("StripComments() = %q, want %q", got, expected)
	}
}

// TestSplitFlow tests top-level comma splitting
func TestSplitFlow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"blank", "  ", nil},
		{"single", "a", []string{"a"}},
		{"simple", "1, 2, 3", []string{"1", " 2", " 3"}},
		{"quoted comma", `1, "a,b", true`, []string{"1", ` "a,b"`, " true"}},
		{"single quoted comma", `'x, y', z`, []string{`'x, y'`, " z"}},
		{"nested sequence", "1, [2, 3], 4", []string{"1", " [2, 3]", " 4"}},
		{"nested mapping", "a: {b: 1, c: 2}, d: 3", []string{"a: {b: 1, c: 2}", " d: 3"}},
		{"trailing comma", "1, 2,", []string{"1", " 2"}},
		{"trailing blank", "1, 2, ", []string{"1", " 2"}},
		{"inner empty kept", "1,,2", []string{"1", "", "2"}},
		{"bracket in quotes", `"[", 2`, []string{`"["`, " 2"}},
		{"unclosed quote swallows rest", `'a, b, c`, []string{`'a, b, c`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFlow(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitFlow(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}
