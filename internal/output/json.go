package output

import (
	"encoding/json"
	"io"

	"github.com/kimryan/Readability/internal/engine"
)

// JSONFormatter outputs results or diagnostics as pretty-printed JSON
// arrays.
type JSONFormatter struct{}

type jsonResult struct {
	File                string  `json:"file"`
	Chars               int     `json:"chars"`
	Words               int     `json:"words"`
	Syllables           int     `json:"syllables"`
	ComplexWords        int     `json:"complex_words"`
	Sentences           int     `json:"sentences"`
	TextLines           int     `json:"text_lines"`
	NonTextLines        int     `json:"non_text_lines"`
	BlankLines          int     `json:"blank_lines"`
	Paragraphs          int     `json:"paragraphs"`
	WordsPerSentence    float64 `json:"words_per_sentence"`
	SyllablesPerWord    float64 `json:"syllables_per_word"`
	PercentComplexWords float64 `json:"percent_complex_words"`
	Fog                 float64 `json:"fog"`
	Flesch              float64 `json:"flesch"`
	Kincaid             float64 `json:"kincaid"`
}

type jsonDiagnostic struct {
	File    string  `json:"file"`
	Metric  string  `json:"metric"`
	Value   float64 `json:"value"`
	Limit   float64 `json:"limit"`
	Message string  `json:"message"`
}

// FormatResults writes results as a JSON array. No results produces
// [].
func (f *JSONFormatter) FormatResults(w io.Writer, results []engine.FileResult) error {
	items := make([]jsonResult, 0, len(results))
	for _, fr := range results {
		st := fr.State
		items = append(items, jsonResult{
			File:                fr.Path,
			Chars:               st.Chars,
			Words:               st.Words,
			Syllables:           st.Syllables,
			ComplexWords:        st.ComplexWords,
			Sentences:           st.Sentences,
			TextLines:           st.TextLines,
			NonTextLines:        st.NonTextLines,
			BlankLines:          st.BlankLines,
			Paragraphs:          st.Paragraphs,
			WordsPerSentence:    st.WordsPerSentence,
			SyllablesPerWord:    st.SyllablesPerWord,
			PercentComplexWords: st.PercentComplexWords,
			Fog:                 st.Fog,
			Flesch:              st.Flesch,
			Kincaid:             st.Kincaid,
		})
	}
	return encode(w, items)
}

// FormatDiagnostics writes diagnostics as a JSON array. No
// diagnostics produces [].
func (f *JSONFormatter) FormatDiagnostics(w io.Writer, diagnostics []engine.Diagnostic) error {
	items := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		items = append(items, jsonDiagnostic{
			File:    d.File,
			Metric:  d.Metric,
			Value:   d.Value,
			Limit:   d.Limit,
			Message: d.Message,
		})
	}
	return encode(w, items)
}

func encode(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
