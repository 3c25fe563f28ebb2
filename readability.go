// Package readability measures how readable a block of English prose
// is. It reports structural counts (characters, words, sentences,
// lines, paragraphs) and three readability indices (Fog, Flesch and
// Flesch-Kincaid) for raw text blocks and plain-text files.
//
// A Document owns its statistics; successive calls either replace or
// accumulate them. Documents are not safe for concurrent use — analyse
// independent inputs with independent Documents.
package readability

import (
	"github.com/kimryan/Readability/internal/analyse"
	"github.com/kimryan/Readability/internal/report"
	"github.com/kimryan/Readability/internal/sentence"
	"github.com/kimryan/Readability/internal/syllable"
)

// Document is an analysis session over one logical document.
type Document struct {
	session *analyse.Session
}

// New returns a Document with empty statistics. It fails only when the
// sentence tokenizer's embedded English training data cannot load.
func New() (*Document, error) {
	splitter, err := sentence.NewSplitter()
	if err != nil {
		return nil, err
	}
	return &Document{
		session: analyse.NewSession(splitter, syllable.Counter{}),
	}, nil
}

// AnalyseBlock analyses a block of raw text. With accumulate false the
// statistics are replaced; with accumulate true they add to previous
// calls, except the sentence count, which always reflects this block
// alone. An empty block leaves the statistics untouched.
func (d *Document) AnalyseBlock(text string, accumulate bool) {
	d.session.AnalyseBlock(text, accumulate)
}

// AnalyseFile analyses the plain-text file at path. A missing, empty
// or binary file leaves the statistics untouched rather than
// returning an error; check the counts to detect that.
func (d *Document) AnalyseFile(path string, accumulate bool) {
	d.session.AnalyseFile(path, accumulate)
}

// FileName returns the path of the last analysed file, or "" for
// block input.
func (d *Document) FileName() string { return d.session.State().SourceLabel }

// NumChars returns the total characters across analysed text lines.
func (d *Document) NumChars() int { return d.session.State().Chars }

// NumWords returns the number of accepted words.
func (d *Document) NumWords() int { return d.session.State().Words }

// NumSyllables returns the total syllable count over accepted words.
func (d *Document) NumSyllables() int { return d.session.State().Syllables }

// NumComplexWords returns the number of non-hyphenated words with more
// than two syllables.
func (d *Document) NumComplexWords() int { return d.session.State().ComplexWords }

// NumSentences returns the sentence count of the latest analysed
// input.
func (d *Document) NumSentences() int { return d.session.State().Sentences }

// NumTextLines returns the number of lines containing words.
func (d *Document) NumTextLines() int { return d.session.State().TextLines }

// NumNonTextLines returns the number of non-empty lines without any
// word characters.
func (d *Document) NumNonTextLines() int { return d.session.State().NonTextLines }

// NumBlankLines returns the number of empty lines.
func (d *Document) NumBlankLines() int { return d.session.State().BlankLines }

// NumParagraphs returns the number of contiguous runs of text lines.
func (d *Document) NumParagraphs() int { return d.session.State().Paragraphs }

// WordsPerSentence returns the average words per sentence, or 0 when
// no sentences or words were analysed.
func (d *Document) WordsPerSentence() float64 { return d.session.State().WordsPerSentence }

// SyllablesPerWord returns the average syllables per word, or 0 when
// no sentences or words were analysed.
func (d *Document) SyllablesPerWord() float64 { return d.session.State().SyllablesPerWord }

// PercentComplexWords returns the share of complex words among all
// accepted words, in percent.
func (d *Document) PercentComplexWords() float64 { return d.session.State().PercentComplexWords }

// Fog returns the Gunning-Fog index: roughly the years of schooling
// needed to follow the text.
func (d *Document) Fog() float64 { return d.session.State().Fog }

// Flesch returns the Flesch reading-ease score; higher is easier.
func (d *Document) Flesch() float64 { return d.session.State().Flesch }

// Kincaid returns the Flesch-Kincaid grade level.
func (d *Document) Kincaid() float64 { return d.session.State().Kincaid }

// UniqueWords returns each accepted word, lowercased, mapped to its
// occurrence count. The result is a copy.
func (d *Document) UniqueWords() map[string]int { return d.session.State().UniqueWords() }

// Report renders the statistics and indices in a fixed text layout.
func (d *Document) Report() string { return report.Render(d.session.State()) }
