package codec

import "github.com/rs/zerolog"

// Option configures encoding and decoding.
type Option func(*config)

type config struct {
	strict bool
	indent string
	logger zerolog.Logger
}

func newConfig(opts []Option) config {
	c := config{indent: "  ", logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithStrictEndpoints makes DecodeGraph reject links to unknown nodes instead
// of dropping them.
func WithStrictEndpoints() Option {
	return func(c *config) { c.strict = true }
}

// WithIndent sets the indentation of encoded documents; "" writes compact JSON.
func WithIndent(indent string) Option {
	return func(c *config) { c.indent = indent }
}

// WithLogger routes decode warnings to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
