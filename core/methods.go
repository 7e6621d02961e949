// SPDX-License-Identifier: MIT
// Package: netquiz/core
//
// methods.go - node and edge lifecycle plus read-only queries.
//
// Determinism:
//   - Nodes() and Edges() return insertion order.
//   - Neighbors() returns ascending ids; IncidentEdges() returns insertion order.
// Concurrency:
//   - Mutators take the write lock, queries the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts n. A negative or duplicate id yields MalformedInputError.
// A nil attribute map is replaced by an empty one.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID < 0 {
		return &MalformedInputError{IDs: []int{n.ID}, Reason: "negative node id"}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodeIndex[n.ID]; exists {
		return &MalformedInputError{IDs: []int{n.ID}, Reason: "duplicate node id"}
	}
	if n.Attributes == nil {
		n.Attributes = make(map[string]float64)
	}
	node := n
	g.nodes = append(g.nodes, &node)
	g.nodeIndex[n.ID] = &node

	return nil
}

// AddEdge inserts e when both endpoints exist.
//
// Returns:
//   - (false, nil) if an endpoint is unknown: the edge is filtered, not an error.
//   - MalformedInputError for a self-loop or a duplicate undirected edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, okS := g.nodeIndex[e.Source]
	_, okT := g.nodeIndex[e.Target]
	if !okS || !okT {
		return false, nil
	}
	if e.Source == e.Target {
		return false, &MalformedInputError{IDs: []int{e.Source}, Reason: "self-loop"}
	}
	k := keyOf(e.Source, e.Target)
	if _, dup := g.edgeIndex[k]; dup {
		return false, &MalformedInputError{IDs: []int{k.lo, k.hi}, Reason: "duplicate undirected edge"}
	}
	if e.Attributes == nil {
		e.Attributes = make(map[string]float64)
	}
	edge := e
	g.edges = append(g.edges, &edge)
	g.edgeIndex[k] = &edge
	g.adjacency[e.Source] = append(g.adjacency[e.Source], &edge)
	g.adjacency[e.Target] = append(g.adjacency[e.Target], &edge)

	return true, nil
}

// HasNode reports whether id is in the node set.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIndex[id]
	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeIndex[keyOf(u, v)]
	return ok
}

// Node returns the live node with the given id.
func (g *Graph) Node(id int) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodeIndex[id]
	return n, ok
}

// Edge returns the live edge {u,v}.
func (g *Graph) Edge(u, v int) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edgeIndex[keyOf(u, v)]
	return e, ok
}

// Nodes returns the live nodes in insertion order. The slice is a copy.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the live edges in insertion order. The slice is a copy.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int, 0, len(g.nodes))
	for _, n := range g.nodes {
		ids = append(ids, n.ID)
	}
	sort.Ints(ids)
	return ids
}

// Neighbors returns the ids adjacent to id in ascending order.
// Unknown ids yield nil.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	inc := g.adjacency[id]
	if len(inc) == 0 {
		return nil
	}
	out := make([]int, 0, len(inc))
	for _, e := range inc {
		out = append(out, e.Other(id))
	}
	sort.Ints(out)
	return out
}

// IncidentEdges returns the live edges touching id in insertion order.
func (g *Graph) IncidentEdges(id int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])
	return out
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency[id])
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Validate checks the structural invariants: unique non-negative node ids,
// edge endpoints in the node set, no self-loops, no duplicate undirected
// edges and, if present, an RCM ordering that is a permutation of the ids.
// The first violation is returned as a *MalformedInputError.
// Complexity: O(V+E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		if n.ID < 0 {
			return &MalformedInputError{IDs: []int{n.ID}, Reason: "negative node id"}
		}
		if _, dup := seen[n.ID]; dup {
			return &MalformedInputError{IDs: []int{n.ID}, Reason: "duplicate node id"}
		}
		seen[n.ID] = struct{}{}
	}
	pairs := make(map[edgeKey]struct{}, len(g.edges))
	for _, e := range g.edges {
		_, okS := seen[e.Source]
		_, okT := seen[e.Target]
		if !okS || !okT {
			return &MalformedInputError{IDs: []int{e.Source, e.Target}, Reason: "edge endpoint not in node set"}
		}
		if e.Source == e.Target {
			return &MalformedInputError{IDs: []int{e.Source}, Reason: "self-loop"}
		}
		k := keyOf(e.Source, e.Target)
		if _, dup := pairs[k]; dup {
			return &MalformedInputError{IDs: []int{k.lo, k.hi}, Reason: "duplicate undirected edge"}
		}
		pairs[k] = struct{}{}
	}
	if g.RCM != nil {
		if err := g.RCM.checkPermutation(seen); err != nil {
			return err
		}
	}

	return nil
}

// IsPermutationOf reports whether o holds every node id of g exactly once.
func (o Ordering) IsPermutationOf(g *Graph) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make(map[int]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		ids[n.ID] = struct{}{}
	}
	return o.checkPermutation(ids) == nil
}

func (o Ordering) checkPermutation(ids map[int]struct{}) error {
	if len(o) != len(ids) {
		return &MalformedInputError{Reason: fmt.Sprintf("ordering has %d entries for %d nodes", len(o), len(ids))}
	}
	used := make(map[int]struct{}, len(o))
	for _, id := range o {
		if _, ok := ids[id]; !ok {
			return &MalformedInputError{IDs: []int{id}, Reason: "ordering references unknown node"}
		}
		if _, dup := used[id]; dup {
			return &MalformedInputError{IDs: []int{id}, Reason: "ordering repeats node"}
		}
		used[id] = struct{}{}
	}
	return nil
}
