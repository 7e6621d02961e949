// File: methods_clone.go
// Role: Deep cloning of graph instances.
// Concurrency:
//   - Read lock on the source for the snapshot; the clone is unshared.

package core

// Clone returns a deep copy: nodes, edges, attribute maps, layout points and
// the RCM ordering. Mutating the clone never affects g.
// Complexity: O(V+E) plus the size of all attribute maps.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for _, n := range g.nodes {
		c := cloneNode(n)
		clone.nodes = append(clone.nodes, c)
		clone.nodeIndex[c.ID] = c
	}
	for _, e := range g.edges {
		c := &Edge{Source: e.Source, Target: e.Target, Attributes: cloneAttrs(e.Attributes)}
		clone.edges = append(clone.edges, c)
		clone.edgeIndex[keyOf(c.Source, c.Target)] = c
		clone.adjacency[c.Source] = append(clone.adjacency[c.Source], c)
		clone.adjacency[c.Target] = append(clone.adjacency[c.Target], c)
	}
	if g.RCM != nil {
		clone.RCM = append(Ordering(nil), g.RCM...)
	}

	return clone
}

func cloneNode(n *Node) *Node {
	c := &Node{ID: n.ID, Name: n.Name, Attributes: cloneAttrs(n.Attributes)}
	if n.Layer != nil {
		l := *n.Layer
		c.Layer = &l
	}
	if n.Gansner != nil {
		v := *n.Gansner
		c.Gansner = &v
	}
	if n.Hierarchy != nil {
		p := *n.Hierarchy
		c.Hierarchy = &p
	}
	if n.Radial != nil {
		p := *n.Radial
		c.Radial = &p
	}
	return c
}

func cloneAttrs(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Copy returns a deep copy of n as a detached value.
func (n *Node) Copy() Node {
	return *cloneNode(n)
}
