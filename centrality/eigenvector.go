package centrality

import (
	"math"

	"github.com/katalvlaran/netquiz/core"
)

const methodEigenvector = "Eigenvector"

// Eigenvector returns the eigenvector centrality of every node by power
// iteration on (A + I), starting from the uniform vector. It stops when
// Σ|x - x_prev| < n·tol and fails with *core.ConvergenceError after maxIter
// steps. An empty graph yields an empty map.
// Complexity: O(maxIter·(V+E)).
func Eigenvector(g *core.Graph, tol float64, maxIter int) (map[int]float64, error) {
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return map[int]float64{}, nil
	}
	pos := make(map[int]int, n)
	for i, id := range ids {
		pos[id] = i
	}
	adj := make([][]int, n)
	for i, id := range ids {
		for _, nb := range g.Neighbors(id) {
			adj[i] = append(adj[i], pos[nb])
		}
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}
	prev := make([]float64, n)
	residual := math.Inf(1)
	for iter := 0; iter < maxIter; iter++ {
		copy(prev, x)
		// x = (A + I) prev
		for i := range adj {
			for _, j := range adj[i] {
				x[j] += prev[i]
			}
		}
		norm := 0.0
		for _, v := range x {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}
		residual = 0
		for i := range x {
			x[i] /= norm
			residual += math.Abs(x[i] - prev[i])
		}
		if residual < float64(n)*tol {
			out := make(map[int]float64, n)
			for i, id := range ids {
				out[id] = x[i]
			}
			return out, nil
		}
	}
	return nil, &core.ConvergenceError{Method: methodEigenvector, Iterations: maxIter, Residual: residual}
}
