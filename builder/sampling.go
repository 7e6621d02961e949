// Package builder provides the sampling primitives behind exact edge counts.
package builder

import "math/rand"

// sampleIndices draws m distinct indices from [0,total) uniformly without
// replacement via a partial Fisher–Yates shuffle. Caller guarantees m ≤ total.
// Complexity: O(total) memory, O(total + m) time.
func sampleIndices(rng *rand.Rand, total, m int) []int {
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < m; i++ {
		j := i + rng.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:m]
}

// unrankPair maps k ∈ [0, C(n,2)) to the k-th pair (i,j), i<j, in row-major order.
func unrankPair(n, k int) (int, int) {
	i := 0
	for row := n - 1; k >= row; row-- {
		k -= row
		i++
	}
	return i, i + 1 + k
}
