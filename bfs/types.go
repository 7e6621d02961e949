// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node, with its distance from the
	// start. A non-nil error aborts BFS.
	OnVisit func(id int, depth int) error

	// NeighborLess orders the neighbors of a node before they are enqueued.
	// Nil keeps ascending id order.
	NeighborLess func(a, b int) bool
}

// DefaultOptions returns Options with a background context, ascending-id
// neighbor order and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithNeighborOrder enqueues the neighbors of each node sorted by less.
// The sort is stable over ascending ids, so ties keep id order.
func WithNeighborOrder(less func(a, b int) bool) Option {
	return func(o *Options) {
		if less != nil {
			o.NeighborLess = less
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node id → distance (in edges) from the start.
type Result struct {
	Order []int
	Depth map[int]int
}
