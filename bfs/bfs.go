// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/netquiz/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// or any hook/context error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors orders the neighbors of item and enqueues each unseen one.
func (w *walker) enqueueNeighbors(item queueItem) {
	neighbors := w.graph.Neighbors(item.id)
	if w.opts.NeighborLess != nil {
		sort.SliceStable(neighbors, func(i, j int) bool {
			return w.opts.NeighborLess(neighbors[i], neighbors[j])
		})
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1)
		}
	}
}

// Components returns the connected components of g, each as an ascending id
// slice, ordered by their smallest id.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.NodeCount())
	var comps [][]int
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		// Start node exists by construction; the error path is unreachable.
		res, _ := BFS(g, id)
		comp := append([]int(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
