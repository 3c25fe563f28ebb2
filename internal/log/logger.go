// Package log holds the verbose diagnostic logger for the CLI.
// Messages go to the configured writer (typically stderr) and only
// when verbose output was requested.
package log

import (
	"fmt"
	"io"
)

// Logger writes diagnostic messages when Enabled is true.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted message followed by a newline to W when
// Enabled is true, and is a no-op otherwise.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
