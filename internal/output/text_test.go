package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kimryan/Readability/internal/analyse"
	"github.com/kimryan/Readability/internal/engine"
	"github.com/kimryan/Readability/internal/formula"
	"github.com/kimryan/Readability/internal/metrics"
)

func sampleResults() []engine.FileResult {
	st := &analyse.State{
		SourceLabel: "a.txt",
		Chars:       100,
		Words:       20,
		Syllables:   30,
		Sentences:   2,
	}
	st.Scores = formula.Derive(st.Totals())
	return []engine.FileResult{{Path: "a.txt", State: st}}
}

func TestTextFormatter_FullReport(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.FormatResults(&buf, sampleResults()); err != nil {
		t.Fatalf("FormatResults: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "File name                  : a.txt\n") {
		t.Errorf("missing file-name line:\n%s", got)
	}
	if !strings.Contains(got, "READABILITY INDICES") {
		t.Errorf("missing indices block:\n%s", got)
	}
}

func TestTextFormatter_MetricColumns(t *testing.T) {
	words, _ := metrics.Lookup("words")
	wps, _ := metrics.Lookup("words-per-sentence")

	var buf bytes.Buffer
	f := &TextFormatter{Metrics: []metrics.Definition{words, wps}}
	if err := f.FormatResults(&buf, sampleResults()); err != nil {
		t.Fatalf("FormatResults: %v", err)
	}
	got := buf.String()
	want := "a.txt: words=20 words-per-sentence=10.0000\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextFormatter_Diagnostics(t *testing.T) {
	diags := []engine.Diagnostic{{
		File:    "a.txt",
		Metric:  "fog",
		Value:   14.2,
		Limit:   12,
		Message: "fog 14.20 exceeds limit 12.00",
	}}

	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.FormatDiagnostics(&buf, diags); err != nil {
		t.Fatalf("FormatDiagnostics: %v", err)
	}
	if got := buf.String(); got != "a.txt fog fog 14.20 exceeds limit 12.00\n" {
		t.Errorf("got %q", got)
	}
}

func TestTextFormatter_DiagnosticsColor(t *testing.T) {
	diags := []engine.Diagnostic{{File: "a.txt", Metric: "fog", Message: "m"}}

	var buf bytes.Buffer
	f := &TextFormatter{Color: true}
	if err := f.FormatDiagnostics(&buf, diags); err != nil {
		t.Fatalf("FormatDiagnostics: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[36m") {
		t.Errorf("missing ANSI color: %q", buf.String())
	}
}
