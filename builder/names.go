// Package builder provides the node naming schemes used by the generators.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn renders a node name from its id.
// It must be a pure, deterministic function.
type IDFn func(id int) string

const (
	alphabetSize = 26
	maxPrimes    = 4
)

// MaxLetterNames is the size of the letter alphabet: A..Z with zero to four primes.
const MaxLetterNames = alphabetSize * (maxPrimes + 1)

// DefaultIDFn returns the decimal string of id, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(id int) string {
	return strconv.Itoa(id)
}

// LetterIDFn returns the letter name of id: 0→"A", 25→"Z", 26→"A'", 52→"A''".
// Panics if id < 0 or id ≥ MaxLetterNames.
func LetterIDFn(id int) string {
	if id < 0 || id >= MaxLetterNames {
		panic(fmt.Sprintf("LetterIDFn: id must be in [0,%d), got %d", MaxLetterNames, id))
	}
	return string(rune('A'+id%alphabetSize)) + strings.Repeat("'", id/alphabetSize)
}
