package yaml

import (
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-yamlite/internal/parser"
)

// Option configures a parse call.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger routes parse diagnostics to logger. Reference and indentation
// errors are logged at warn level and a summary of each parse at debug
// level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) parserOptions() []parser.Option {
	return []parser.Option{parser.WithLogger(o.logger)}
}
