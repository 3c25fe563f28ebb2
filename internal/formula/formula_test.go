package formula

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDerive_ZeroSentencesGuard(t *testing.T) {
	s := Derive(Totals{Words: 10, Syllables: 20, ComplexWords: 3})
	if s != (Scores{}) {
		t.Errorf("got %+v, want all zero", s)
	}
}

func TestDerive_ZeroWordsGuard(t *testing.T) {
	s := Derive(Totals{Sentences: 2})
	if s != (Scores{}) {
		t.Errorf("got %+v, want all zero", s)
	}
}

func TestDerive_Averages(t *testing.T) {
	s := Derive(Totals{Words: 54, Sentences: 4, Syllables: 81, ComplexWords: 4})
	if !almostEqual(s.WordsPerSentence, 13.5) {
		t.Errorf("words per sentence = %v, want 13.5", s.WordsPerSentence)
	}
	if !almostEqual(s.SyllablesPerWord, 1.5) {
		t.Errorf("syllables per word = %v, want 1.5", s.SyllablesPerWord)
	}
	if !almostEqual(s.PercentComplexWords, 400.0/54.0) {
		t.Errorf("percent complex = %v, want %v", s.PercentComplexWords, 400.0/54.0)
	}
}

func TestDerive_Indices(t *testing.T) {
	s := Derive(Totals{Words: 54, Sentences: 4, Syllables: 81, ComplexWords: 4})
	wantFog := (13.5 + 400.0/54.0) * 0.4
	if !almostEqual(s.Fog, wantFog) {
		t.Errorf("fog = %v, want %v", s.Fog, wantFog)
	}
	wantFlesch := 206.835 - 1.015*13.5 - 84.6*1.5
	if !almostEqual(s.Flesch, wantFlesch) {
		t.Errorf("flesch = %v, want %v", s.Flesch, wantFlesch)
	}
	wantKincaid := 11.8*1.5 + 0.39*13.5 - 15.59
	if !almostEqual(s.Kincaid, wantKincaid) {
		t.Errorf("kincaid = %v, want %v", s.Kincaid, wantKincaid)
	}
}

func TestDerive_Pure(t *testing.T) {
	in := Totals{Words: 31, Sentences: 3, Syllables: 50, ComplexWords: 5}
	if Derive(in) != Derive(in) {
		t.Error("Derive is not deterministic over equal totals")
	}
}
