// Package sentence adapts the punkt sentence tokenizer for the
// analysis pipeline.
package sentence

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter segments raw text into sentences using the pre-trained
// English punkt model. Abbreviations such as "U.S." and decimals such
// as "1.23" stay inside a single sentence.
type Splitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSplitter loads the embedded English training data.
func NewSplitter() (*Splitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}
	return &Splitter{tokenizer: tokenizer}, nil
}

// Split returns the sentences of text in order. Empty or
// whitespace-only input yields none.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
