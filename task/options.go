package task

import (
	"fmt"

	"github.com/katalvlaran/netquiz/builder"
	"github.com/rs/zerolog"
)

// DefaultMaxAttempts bounds the rejection loop of Generate.
const DefaultMaxAttempts = 1000

// DefaultAttributes returns the attributes sampled by kinds one and two.
func DefaultAttributes() []string {
	return append([]string(nil), builder.FriendshipAttributes...)
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithAttributes sets the candidate attribute list. Panics if empty.
func WithAttributes(attrs []string) Option {
	if len(attrs) == 0 {
		panic("task: WithAttributes(empty)")
	}
	cp := append([]string(nil), attrs...)
	return func(s *Synthesizer) { s.attrs = cp }
}

// WithMaxAttempts bounds the rejection loop. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("task: WithMaxAttempts(%d)", n))
	}
	return func(s *Synthesizer) { s.maxAttempts = n }
}

// WithLogger routes sampling diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Synthesizer) { s.logger = l }
}
