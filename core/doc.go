// Package core provides the shared in-memory graph model used by every
// stimulus stage: generation, reordering, layout extraction, centrality
// enrichment and task synthesis.
//
// The Graph G = (V,E) is small, simple and undirected:
//
//   - Node ids are non-negative integers, unique within a Graph.
//   - Edges are undirected; (u,v) and (v,u) denote the same edge and are
//     stored once under the canonical key (min,max).
//   - Self-loops and parallel edges are rejected.
//   - Edges whose endpoints are not in the node set are filtered on insertion,
//     never stored and never reported as an error.
//   - Nodes and edges keep their insertion order, so iteration (and therefore
//     JSON output) is deterministic.
//
// Enrichment stages never mutate a Graph referenced elsewhere: they call
// Clone, rewrite the clone and return it.
//
// Core Methods:
//
//	NewGraph() *Graph
//	AddNode(n Node) error                 // O(1)
//	AddEdge(e Edge) (added bool, err error) // O(1)
//	HasNode(id int) bool                  // O(1)
//	HasEdge(u, v int) bool                // O(1)
//	Neighbors(id int) []int               // O(d log d), ascending ids
//	IncidentEdges(id int) []*Edge         // O(d), insertion order
//	Validate() error                      // O(V+E)
//	Clone() *Graph                        // O(V+E), deep copy
//
// Errors:
//
//	ErrMalformedInput  - structural invariant violated (MalformedInputError)
//	ErrDegenerateGraph - generator/sampler request cannot be satisfied
//	ErrLayoutEngine    - external layout oracle failed or timed out
//	ErrConvergence     - eigenvector iteration did not converge
//	ErrAttributeKey    - an expected attribute is absent
package core
