// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing Order and Depth.
//   - WithOnVisit observes each node with its depth and may abort.
//   - WithNeighborOrder controls the order in which the neighbors of the
//     current node are enqueued (ascending id by default). Cuthill-McKee
//     ordering relies on this to enqueue by increasing degree.
//
// Determinism
//
//	core.Graph.Neighbors returns ascending ids and the neighbor order is a
//	stable sort, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E) plus O(d log d) per node for neighbor ordering
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithNeighborOrder(func(a, b int) bool { return g.Degree(a) < g.Degree(b) }),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
