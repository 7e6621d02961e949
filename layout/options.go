package layout

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each provider invocation.
const DefaultTimeout = 30 * time.Second

// Option configures Extract.
type Option func(*options)

type options struct {
	timeout time.Duration
	logger  zerolog.Logger
}

func defaultOptions() options {
	return options{timeout: DefaultTimeout, logger: zerolog.Nop()}
}

// WithTimeout sets the per-invocation deadline. Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("layout: WithTimeout(%s)", d))
	}
	return func(o *options) { o.timeout = d }
}

// WithLogger routes diagnostics (degenerate axes, provider failures) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
