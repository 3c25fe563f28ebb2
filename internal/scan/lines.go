package scan

import "regexp"

// Category is the classification of a single input line.
type Category int

const (
	// Text lines contain at least one word character.
	Text Category = iota
	// Blank lines are empty after terminator stripping.
	Blank
	// NonText lines are non-empty but consist only of whitespace and
	// punctuation.
	NonText
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Text:
		return "text"
	case Blank:
		return "blank"
	case NonText:
		return "non-text"
	}
	return "unknown"
}

var (
	wordCharPattern    = regexp.MustCompile(`\w`)
	nonWordOnlyPattern = regexp.MustCompile(`^\W+$`)
)

// Classify categorizes one line (line terminator already stripped) and
// returns the updated in-paragraph flag. A Text line begins a
// paragraph when none is open; Blank and NonText lines close the
// current one.
func Classify(line string, inParagraph bool) (Category, bool) {
	switch {
	case wordCharPattern.MatchString(line):
		return Text, true
	case line == "":
		return Blank, false
	case nonWordOnlyPattern.MatchString(line):
		return NonText, false
	default:
		// The word-char and non-word-only patterns are complementary
		// over non-empty lines, so this branch is unreachable; fall
		// back to Text.
		return Text, true
	}
}
