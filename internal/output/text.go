package output

import (
	"fmt"
	"io"

	"github.com/kimryan/Readability/internal/engine"
	"github.com/kimryan/Readability/internal/metrics"
	"github.com/kimryan/Readability/internal/report"
)

// TextFormatter outputs human-readable text. With no Metrics selected
// each result prints as a full fixed-layout report; with Metrics it
// prints one line per file. When Color is true diagnostics print the
// file in cyan and the metric in yellow.
type TextFormatter struct {
	Color   bool
	Metrics []metrics.Definition
}

// FormatResults writes each result, blank-line separated for full
// reports.
func (f *TextFormatter) FormatResults(w io.Writer, results []engine.FileResult) error {
	for i, fr := range results {
		if len(f.Metrics) == 0 {
			if i > 0 {
				if _, err := fmt.Fprint(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, report.Render(fr.State)); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s:", fr.Path); err != nil {
			return err
		}
		for _, def := range f.Metrics {
			value := def.Format(def.Compute(fr.State))
			if _, err := fmt.Fprintf(w, " %s=%s", def.Name, value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatDiagnostics writes each diagnostic as a single line in the
// pattern: file metric message.
func (f *TextFormatter) FormatDiagnostics(w io.Writer, diagnostics []engine.Diagnostic) error {
	for _, d := range diagnostics {
		var err error
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%s\033[0m \033[33m%s\033[0m %s\n",
				d.File, d.Metric, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s %s %s\n", d.File, d.Metric, d.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
