// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a *core.DegenerateGraphError when its precondition
// is violated.
package builder

import "math/rand"

// validateNodes ensures n ≥ 1.
func validateNodes(method string, n int) error {
	if n < 1 {
		return degenerate(method, "node count must be ≥ 1, got %d", n)
	}
	return nil
}

// validateDensity enforces d ∈ [MinDensity, MaxDensity].
func validateDensity(method string, d float64) error {
	if !(d >= MinDensity && d <= MaxDensity) {
		return degenerate(method, "density must be in [%.1f,%.1f], got %g", MinDensity, MaxDensity, d)
	}
	return nil
}

// validateEdgeBudget ensures m edges fit into the available pairs.
func validateEdgeBudget(method string, m, pairs int, scope string) error {
	if m > pairs {
		return degenerate(method, "%d edges requested but %s offers only %d pairs", m, scope, pairs)
	}
	return nil
}

// validateRand ensures a stochastic constructor has an RNG.
func validateRand(method string, rng *rand.Rand) error {
	if rng == nil {
		return degenerate(method, "rng is required (use WithSeed or WithRand)")
	}
	return nil
}

// edgeTarget is the floor(n*(n-1)*d) edge count shared by all modes.
func edgeTarget(n int, d float64) int {
	return int(float64(n) * float64(n-1) * d)
}

// pairCount is C(n,2).
func pairCount(n int) int {
	return n * (n - 1) / 2
}
