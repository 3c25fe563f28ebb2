// Package formula derives readability scores from aggregate text
// counts. Derivation is a pure function of the totals so the scores
// can be recomputed whenever the totals change.
package formula

// Totals are the aggregate counts a scanning pass produces.
type Totals struct {
	Words        int
	Sentences    int
	Syllables    int
	ComplexWords int
}

// Scores are the per-word and per-sentence averages plus the three
// readability indices.
type Scores struct {
	WordsPerSentence    float64
	SyllablesPerWord    float64
	PercentComplexWords float64
	Fog                 float64
	Flesch              float64
	Kincaid             float64
}

// Derive computes Scores from Totals. With no sentences or no words
// every score is zero, which also guards all divisions. No rounding is
// applied; presentation decides precision.
func Derive(t Totals) Scores {
	if t.Sentences == 0 || t.Words == 0 {
		return Scores{}
	}

	var s Scores
	s.WordsPerSentence = float64(t.Words) / float64(t.Sentences)
	s.SyllablesPerWord = float64(t.Syllables) / float64(t.Words)
	s.PercentComplexWords = float64(t.ComplexWords) / float64(t.Words) * 100

	s.Fog = (s.WordsPerSentence + s.PercentComplexWords) * 0.4
	s.Flesch = 206.835 - 1.015*s.WordsPerSentence - 84.6*s.SyllablesPerWord
	s.Kincaid = 11.8*s.SyllablesPerWord + 0.39*s.WordsPerSentence - 15.59
	return s
}
