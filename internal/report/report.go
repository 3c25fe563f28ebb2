// Package report renders an analysis state in the classic fixed
// layout. All rounding happens here; the stored scores stay unrounded.
package report

import (
	"fmt"
	"strings"

	"github.com/kimryan/Readability/internal/analyse"
)

// labelWidth is the column the separator aligns to.
const labelWidth = 26

// Render formats st as the fixed-layout text report. The file-name
// line appears only when the input came from a file.
func Render(st *analyse.State) string {
	var b strings.Builder

	if st.SourceLabel != "" {
		writeString(&b, "File name", st.SourceLabel)
	}
	writeInt(&b, "Number of characters", st.Chars)
	writeInt(&b, "Number of words", st.Words)
	writeFloat(&b, "Percent of complex words", st.PercentComplexWords, 2)
	writeFloat(&b, "Average syllables per word", st.SyllablesPerWord, 4)
	writeInt(&b, "Number of sentences", st.Sentences)
	writeFloat(&b, "Average words per sentence", st.WordsPerSentence, 4)
	writeInt(&b, "Number of text lines", st.TextLines)
	writeInt(&b, "Number of non-text lines", st.NonTextLines)
	writeInt(&b, "Number of blank lines", st.BlankLines)
	writeInt(&b, "Number of paragraphs", st.Paragraphs)

	b.WriteString("\n\nREADABILITY INDICES\n\n")

	writeFloat(&b, "Fog", st.Fog, 4)
	writeFloat(&b, "Flesch", st.Flesch, 4)
	writeFloat(&b, "Flesch-Kincaid", st.Kincaid, 4)

	return b.String()
}

func writeString(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s : %s\n", labelWidth, label, value)
}

func writeInt(b *strings.Builder, label string, value int) {
	fmt.Fprintf(b, "%-*s : %d\n", labelWidth, label, value)
}

func writeFloat(b *strings.Builder, label string, value float64, precision int) {
	fmt.Fprintf(b, "%-*s : %.*f\n", labelWidth, label, precision, value)
}
