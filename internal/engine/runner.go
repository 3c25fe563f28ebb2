// Package engine drives multi-file analysis runs and applies the
// configured readability thresholds.
package engine

import (
	"fmt"

	"github.com/kimryan/Readability/internal/analyse"
	"github.com/kimryan/Readability/internal/config"
	"github.com/kimryan/Readability/internal/log"
	"github.com/kimryan/Readability/internal/mdtext"
	"github.com/kimryan/Readability/internal/textio"
)

// Runner analyses a set of files. Each file gets a fresh session so
// results stay independent; with Total set a single session
// accumulates every input instead.
type Runner struct {
	Config   *config.Config
	Splitter analyse.Splitter
	Counter  analyse.Counter

	// Markdown extracts prose from Markdown sources before analysis.
	Markdown bool

	// Total accumulates all inputs into one combined result labelled
	// "(total)". The sentence count of a combined result reflects
	// only the last input.
	Total bool

	Log *log.Logger
}

// FileResult pairs a path with its final analysis state.
type FileResult struct {
	Path  string
	State *analyse.State
}

// Result holds the output of a run.
type Result struct {
	Files  []FileResult
	Errors []error
}

// Run analyses the files at the given paths in order. Unreadable and
// binary files are reported in Errors and skipped; ignored files are
// skipped silently.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	var total *analyse.Session
	if r.Total {
		total = analyse.NewSession(r.Splitter, r.Counter)
	}

	for _, path := range paths {
		if r.Config != nil && r.Config.IsIgnored(path) {
			r.Log.Printf("ignoring %s", path)
			continue
		}

		raw, ok := textio.ReadTextFile(path)
		if !ok {
			res.Errors = append(res.Errors, fmt.Errorf("skipping %q: not a readable text file", path))
			continue
		}

		text := string(raw)
		if r.Markdown {
			text = mdtext.ExtractProse(raw)
		}

		if r.Total {
			r.Log.Printf("accumulating %s", path)
			total.Analyse(path, text, true)
			continue
		}

		r.Log.Printf("analysing %s", path)
		session := analyse.NewSession(r.Splitter, r.Counter)
		session.Analyse(path, text, false)
		res.Files = append(res.Files, FileResult{Path: path, State: session.State()})
	}

	if r.Total {
		st := total.State()
		st.SourceLabel = "(total)"
		res.Files = append(res.Files, FileResult{Path: "(total)", State: st})
	}

	return res
}

// RunBlock analyses a single text block (typically stdin) under the
// given label.
func (r *Runner) RunBlock(label, text string) *Result {
	res := &Result{}

	if r.Markdown {
		text = mdtext.ExtractProse([]byte(text))
	}

	session := analyse.NewSession(r.Splitter, r.Counter)
	session.Analyse("", text, false)
	res.Files = append(res.Files, FileResult{Path: label, State: session.State()})
	return res
}
