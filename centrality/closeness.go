package centrality

import (
	"context"

	"github.com/katalvlaran/netquiz/bfs"
	"github.com/katalvlaran/netquiz/core"
)

// Closeness returns the Wasserman–Faust closeness centrality of every node.
// Complexity: O(V·(V+E)).
func Closeness(ctx context.Context, g *core.Graph) (map[int]float64, error) {
	ids := g.NodeIDs()
	n := len(ids)
	out := make(map[int]float64, n)
	for _, u := range ids {
		total, reach := 0, 0
		_, err := bfs.BFS(g, u,
			bfs.WithContext(ctx),
			bfs.WithOnVisit(func(_, depth int) error {
				total += depth
				reach++
				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
		if total == 0 || n <= 1 {
			out[u] = 0
			continue
		}
		c := float64(reach-1) / float64(total)
		out[u] = c * float64(reach-1) / float64(n-1)
	}
	return out, nil
}
