// Package builder - RNG utilities shared by batch drivers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRand to create independent streams for parallel conditions.
package builder

import "math/rand"

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style avalanche, so neighbouring streams are uncorrelated.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand returns the deterministic RNG of stream under seed.
// The same (seed, stream) pair always yields the same sequence.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}
