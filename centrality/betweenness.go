package centrality

import "github.com/katalvlaran/netquiz/core"

// Betweenness returns the normalised shortest-path betweenness of every node
// using Brandes' algorithm on the unweighted graph.
// Complexity: O(V·E) time, O(V+E) memory.
func Betweenness(g *core.Graph) map[int]float64 {
	ids := g.NodeIDs()
	n := len(ids)
	cb := make(map[int]float64, n)
	for _, id := range ids {
		cb[id] = 0
	}
	if n <= 2 {
		return cb
	}

	adj := make(map[int][]int, n)
	for _, id := range ids {
		adj[id] = g.Neighbors(id)
	}

	for _, s := range ids {
		stack := make([]int, 0, n)
		pred := make(map[int][]int, n)
		sigma := map[int]float64{s: 1}
		dist := map[int]int{s: 0}
		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range adj[v] {
				if _, seen := dist[w]; !seen {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		delta := make(map[int]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Each unordered pair was counted from both endpoints.
	scale := 1 / float64((n-1)*(n-2))
	for id := range cb {
		cb[id] *= scale
	}
	return cb
}
