package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kimryan/Readability/internal/analyse"
)

var registry = []Definition{
	{
		ID:          "RDB001",
		Name:        "chars",
		Description: "Characters across analysed text lines.",
		Kind:        KindInteger,
		Default:     true,
		Compute:     func(st *analyse.State) float64 { return float64(st.Chars) },
	},
	{
		ID:          "RDB002",
		Name:        "words",
		Description: "Accepted words.",
		Kind:        KindInteger,
		Default:     true,
		Compute:     func(st *analyse.State) float64 { return float64(st.Words) },
	},
	{
		ID:          "RDB003",
		Name:        "syllables",
		Description: "Syllables over all accepted words.",
		Kind:        KindInteger,
		Compute:     func(st *analyse.State) float64 { return float64(st.Syllables) },
	},
	{
		ID:          "RDB004",
		Name:        "complex-words",
		Description: "Non-hyphenated words with more than two syllables.",
		Kind:        KindInteger,
		Compute:     func(st *analyse.State) float64 { return float64(st.ComplexWords) },
	},
	{
		ID:          "RDB005",
		Name:        "sentences",
		Description: "Sentences in the latest analysed input.",
		Kind:        KindInteger,
		Default:     true,
		Compute:     func(st *analyse.State) float64 { return float64(st.Sentences) },
	},
	{
		ID:          "RDB006",
		Name:        "text-lines",
		Description: "Lines containing words.",
		Kind:        KindInteger,
		Compute:     func(st *analyse.State) float64 { return float64(st.TextLines) },
	},
	{
		ID:          "RDB007",
		Name:        "non-text-lines",
		Description: "Non-empty lines without word characters.",
		Kind:        KindInteger,
		Compute:     func(st *analyse.State) float64 { return float64(st.NonTextLines) },
	},
	{
		ID:          "RDB008",
		Name:        "blank-lines",
		Description: "Empty lines.",
		Kind:        KindInteger,
		Compute:     func(st *analyse.State) float64 { return float64(st.BlankLines) },
	},
	{
		ID:          "RDB009",
		Name:        "paragraphs",
		Description: "Contiguous runs of text lines.",
		Kind:        KindInteger,
		Compute:     func(st *analyse.State) float64 { return float64(st.Paragraphs) },
	},
	{
		ID:          "RDB010",
		Name:        "percent-complex",
		Description: "Complex words as a share of all words, in percent.",
		Kind:        KindFloat,
		Precision:   2,
		Compute:     func(st *analyse.State) float64 { return st.PercentComplexWords },
	},
	{
		ID:          "RDB011",
		Name:        "words-per-sentence",
		Description: "Average words per sentence.",
		Kind:        KindFloat,
		Precision:   4,
		Compute:     func(st *analyse.State) float64 { return st.WordsPerSentence },
	},
	{
		ID:          "RDB012",
		Name:        "syllables-per-word",
		Description: "Average syllables per word.",
		Kind:        KindFloat,
		Precision:   4,
		Compute:     func(st *analyse.State) float64 { return st.SyllablesPerWord },
	},
	{
		ID:          "RDB013",
		Name:        "fog",
		Description: "Gunning-Fog index (grade-level years).",
		Kind:        KindFloat,
		Precision:   4,
		Default:     true,
		Compute:     func(st *analyse.State) float64 { return st.Fog },
	},
	{
		ID:          "RDB014",
		Name:        "flesch",
		Description: "Flesch reading ease (higher is easier).",
		Kind:        KindFloat,
		Precision:   4,
		Default:     true,
		Compute:     func(st *analyse.State) float64 { return st.Flesch },
	},
	{
		ID:          "RDB015",
		Name:        "kincaid",
		Description: "Flesch-Kincaid grade level.",
		Kind:        KindFloat,
		Precision:   4,
		Default:     true,
		Compute:     func(st *analyse.State) float64 { return st.Kincaid },
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs, deduplicated, in
// selection order. Empty names returns the default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
