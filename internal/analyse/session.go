package analyse

import (
	"strings"

	"github.com/kimryan/Readability/internal/formula"
	"github.com/kimryan/Readability/internal/scan"
	"github.com/kimryan/Readability/internal/textio"
)

// Splitter splits raw text into sentences.
type Splitter interface {
	Split(text string) []string
}

// Counter counts syllables in a single word.
type Counter interface {
	Count(word string) int
}

// Session owns one State and applies the scanning pipeline to its
// inputs. A Session is not safe for concurrent use; independent inputs
// need independently owned sessions.
type Session struct {
	splitter Splitter
	counter  Counter

	state       State
	inParagraph bool
}

// NewSession returns a Session with empty totals using the given
// collaborators.
func NewSession(splitter Splitter, counter Counter) *Session {
	return &Session{
		splitter: splitter,
		counter:  counter,
		state:    emptyState(),
	}
}

// State exposes the session's aggregate state.
func (s *Session) State() *State {
	return &s.state
}

// AnalyseBlock scans a block of raw text. An empty block leaves the
// state untouched, even when accumulate is false.
func (s *Session) AnalyseBlock(text string, accumulate bool) {
	if text == "" {
		return
	}
	s.Analyse("", text, accumulate)
}

// AnalyseFile scans the plain-text file at path. Missing, empty or
// binary files leave the state untouched; that silent no-error policy
// means callers detect unusable input by checking counts.
func (s *Session) AnalyseFile(path string, accumulate bool) {
	raw, ok := textio.ReadTextFile(path)
	if !ok {
		return
	}
	s.Analyse(path, string(raw), accumulate)
}

// Analyse scans text under the given source label. With accumulate
// false the state is reset first; with accumulate true the line, word
// and character totals add to the existing ones, while the sentence
// count is overwritten with the count for this input alone. The
// asymmetry matches long-standing upstream behavior and is kept for
// compatibility.
func (s *Session) Analyse(label, text string, accumulate bool) {
	if text == "" {
		return
	}

	if !accumulate {
		s.state = emptyState()
		s.inParagraph = false
	}
	if label != "" {
		s.state.SourceLabel = label
	}

	for _, line := range splitLines(text) {
		s.scanLine(line)
	}

	// The splitter sees the whole raw input, not single lines, so it
	// can use cross-line context around abbreviations and numbers.
	s.state.Sentences = len(s.splitter.Split(text))
	s.state.Scores = formula.Derive(s.state.Totals())
}

// scanLine classifies one line and folds it into the totals. Text
// lines are scanned for words before the text-line counter moves.
func (s *Session) scanLine(line string) {
	wasInParagraph := s.inParagraph

	category, inParagraph := scan.Classify(line, wasInParagraph)
	s.inParagraph = inParagraph

	switch category {
	case scan.Blank:
		s.state.BlankLines++
		return
	case scan.NonText:
		s.state.NonTextLines++
		return
	}

	if !wasInParagraph {
		s.state.Paragraphs++
	}
	s.scanWords(line)
	s.state.TextLines++
}

// scanWords folds one text line's characters and accepted words into
// the totals. Hyphenated compounds are never counted as complex,
// whatever their syllable count.
func (s *Session) scanWords(line string) {
	s.state.Chars += len(line)

	for _, token := range scan.Words(line) {
		if !scan.IsWord(token) {
			continue
		}

		s.state.Frequencies[strings.ToLower(token)]++
		s.state.Words++

		count := s.counter.Count(token)
		s.state.Syllables += count
		if count > 2 && !strings.Contains(token, "-") {
			s.state.ComplexWords++
		}
	}
}

// splitLines splits on line feeds only and discards the trailing empty
// lines produced by trailing terminators. Interior empty lines are
// kept as blank lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
