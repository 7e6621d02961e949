package centrality

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Attribute keys written by Enrich.
const (
	AttrDegree      = "degree"
	AttrCloseness   = "closeness"
	AttrBetweenness = "betweenness"
	AttrEigenvector = "eigenvector"
)

// Eigenvector iteration defaults.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 200
)

// Option configures Enrich.
type Option func(*options)

type options struct {
	tol              float64
	maxIter          int
	structuralDegree bool
	logger           zerolog.Logger
}

func defaultOptions() options {
	return options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		logger:  zerolog.Nop(),
	}
}

// WithTolerance sets the eigenvector convergence tolerance. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(fmt.Sprintf("centrality: WithTolerance(%g)", tol))
	}
	return func(o *options) { o.tol = tol }
}

// WithMaxIterations bounds the eigenvector iteration. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("centrality: WithMaxIterations(%d)", n))
	}
	return func(o *options) { o.maxIter = n }
}

// WithStructuralDegree takes degree from the graph structure instead of the
// pre-existing "degree" attribute.
func WithStructuralDegree() Option {
	return func(o *options) { o.structuralDegree = true }
}

// WithLogger routes diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
