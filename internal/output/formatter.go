// Package output renders analysis results and check diagnostics for
// the CLI, as plain text or JSON.
package output

import (
	"io"

	"github.com/kimryan/Readability/internal/engine"
)

// Formatter renders per-file results or check diagnostics.
type Formatter interface {
	FormatResults(w io.Writer, results []engine.FileResult) error
	FormatDiagnostics(w io.Writer, diagnostics []engine.Diagnostic) error
}
