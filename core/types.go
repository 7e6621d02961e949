// Package core defines the central Graph, Node and Edge types.
//
// A Graph guards its catalogs with a single sync.RWMutex so concurrent
// readers are safe; writers are expected to be the single stage that owns
// the graph (generation or a clone under enrichment).
package core

import "sync"

// Point is a 2D coordinate, serialized as [x, y].
type Point [2]float64

// Node is a vertex of the stimulus graph.
//
// Attributes keys are case-sensitive; their meaning depends on the stage that
// produced them (generation attributes, centrality metrics, ...).
// Gansner, Hierarchy and Radial are nil until layout extraction ran.
type Node struct {
	ID         int
	Name       string
	Attributes map[string]float64

	// Layer is the layer index for layered graphs, nil otherwise.
	Layer *int

	Gansner   *int
	Hierarchy *Point
	Radial    *Point
}

// Edge is an undirected connection between two node ids.
type Edge struct {
	Source     int
	Target     int
	Attributes map[string]float64
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id int) int {
	if e.Source == id {
		return e.Target
	}
	return e.Source
}

// Value returns the attribute value stored under key.
func (e *Edge) Value(key string) (float64, bool) {
	v, ok := e.Attributes[key]
	return v, ok
}

// edgeKey is the canonical (min,max) identity of an undirected edge.
type edgeKey struct{ lo, hi int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{lo: u, hi: v}
}

// Ordering is a sequence holding every node id of a graph exactly once.
type Ordering []int

// Graph is a simple undirected graph with attribute maps on nodes and edges.
type Graph struct {
	mu sync.RWMutex

	nodes     []*Node           // insertion order
	nodeIndex map[int]*Node     // id -> node
	edges     []*Edge           // insertion order
	edgeIndex map[edgeKey]*Edge // unordered endpoint pair -> edge
	adjacency map[int][]*Edge   // id -> incident edges, insertion order

	// RCM is the optional reverse Cuthill-McKee ordering attached by generators.
	RCM Ordering
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[int]*Node),
		edgeIndex: make(map[edgeKey]*Edge),
		adjacency: make(map[int][]*Edge),
	}
}
