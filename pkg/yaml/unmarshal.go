package yaml

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

// Unmarshal parses the YAML-encoded data and stores the result in the value
// pointed to by out.
//
// If the document recorded any diagnostics, Unmarshal returns them joined
// into one error and leaves out untouched. Otherwise the document is
// decoded as by Decode.
//
// Example:
//
//	type Config struct {
//	    Name string `yaml:"name"`
//	    Port int    `yaml:"port"`
//	}
//	var cfg Config
//	err := yaml.Unmarshal([]byte("name: server\nport: 8080"), &cfg)
func Unmarshal(data []byte, out interface{}, opts ...Option) error {
	r := ParseBytes(data, opts...)
	if err := r.Err(); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return Decode(r.Value, out)
}

// Decode stores v in the value pointed to by out.
//
// Struct fields are matched by their `yaml` tag, falling back to a
// case-insensitive match on the field name. Unmarshal will only set exported
// fields. Dates decode into time.Time fields, and strings decode into
// time.Time (RFC 3339) and time.Duration fields. Values are not converted
// between kinds otherwise: a string never fills an int field.
//
// To decode into an interface value, Decode stores one of these:
//
//	bool, for YAML booleans
//	int64, for YAML integers
//	float64, for YAML floats
//	string, for YAML strings
//	time.Time, for YAML dates
//	[]interface{}, for YAML sequences
//	map[string]interface{}, for YAML mappings
//	nil for YAML null
func Decode(v value.Value, out interface{}) error {
	if out == nil {
		return errors.New("yaml: Decode(nil)")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "yaml",
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}

	if err := dec.Decode(v.Interface()); err != nil {
		return fmt.Errorf("yaml: decode: %w", err)
	}
	return nil
}
