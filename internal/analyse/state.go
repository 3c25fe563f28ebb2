// Package analyse runs the text-scanning pipeline: it classifies
// lines, filters and counts words, obtains syllable counts, and owns
// the aggregate state the readability scores derive from.
package analyse

import "github.com/kimryan/Readability/internal/formula"

// State holds the aggregate counts for one session plus the scores
// derived from them. The derived Scores are recomputed from the totals
// after every analysis call and are never updated independently.
type State struct {
	// SourceLabel is the file name for file input, empty for blocks.
	SourceLabel string

	Chars        int
	Words        int
	Syllables    int
	ComplexWords int

	TextLines    int
	NonTextLines int
	BlankLines   int
	Paragraphs   int
	Sentences    int

	// Frequencies maps each accepted word, lowercased, to its
	// occurrence count. Its values always sum to Words.
	Frequencies map[string]int

	formula.Scores
}

// emptyState returns a fresh State with an allocated frequency map.
func emptyState() State {
	return State{Frequencies: make(map[string]int)}
}

// Totals extracts the counts the score derivation needs.
func (s *State) Totals() formula.Totals {
	return formula.Totals{
		Words:        s.Words,
		Sentences:    s.Sentences,
		Syllables:    s.Syllables,
		ComplexWords: s.ComplexWords,
	}
}

// UniqueWords returns a copy of the word frequency map.
func (s *State) UniqueWords() map[string]int {
	out := make(map[string]int, len(s.Frequencies))
	for word, count := range s.Frequencies {
		out[word] = count
	}
	return out
}
