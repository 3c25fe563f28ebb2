// Package syllable adapts the heuristic English syllable counter.
package syllable

import "github.com/mtso/syllables"

// Counter estimates syllables per word. The upstream heuristic is
// about 90% accurate on English words and is treated as authoritative
// here; scores built on it inherit that tolerance.
type Counter struct{}

// Count returns the estimated syllable count for word.
func (Counter) Count(word string) int {
	return syllables.In(word)
}
