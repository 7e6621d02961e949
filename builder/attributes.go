// Package builder provides the attribute value distributions used by the
// generators.
package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn draws one attribute value.
type ValueFn func(rng *rand.Rand) float64

// FractionalValueFn picks uniformly from FractionalValues().
func FractionalValueFn(rng *rand.Rand) float64 {
	return float64(rng.Intn(fractionalValueCount)*2) / 10
}

// IntegerValueFn picks a uniform integer in [MinIntAttribute, MaxIntAttribute].
func IntegerValueFn(rng *rand.Rand) float64 {
	return float64(MinIntAttribute + rng.Intn(MaxIntAttribute-MinIntAttribute+1))
}

// drawAttributes builds one attribute map under policy p.
// Keys are fmt.Sprintf(keyFormat, j) for j = 1..p.count; when p.all is false
// each key is kept with probability 0.5 (the coin is flipped before the value
// is drawn).
func drawAttributes(rng *rand.Rand, p attrPolicy, keyFormat string, value ValueFn) map[string]float64 {
	attrs := make(map[string]float64, p.count)
	for j := 1; j <= p.count; j++ {
		if !p.all && rng.Intn(2) == 0 {
			continue
		}
		attrs[fmt.Sprintf(keyFormat, j)] = value(rng)
	}
	return attrs
}
