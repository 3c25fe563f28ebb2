package engine

import (
	"fmt"
	"sort"

	"github.com/kimryan/Readability/internal/config"
)

// Diagnostic reports one threshold violation for one file.
type Diagnostic struct {
	File    string
	Metric  string
	Value   float64
	Limit   float64
	Message string
}

// Check applies the configured thresholds to each result and returns
// the violations sorted by file, then metric. Files with no enforced
// thresholds produce nothing.
func Check(results []FileResult, cfg *config.Config) []Diagnostic {
	var diags []Diagnostic

	for _, fr := range results {
		th := cfg.EffectiveThresholds(fr.Path)
		st := fr.State

		diags = appendMax(diags, fr.Path, "fog", st.Fog, th.MaxFog)
		diags = appendMax(diags, fr.Path, "kincaid", st.Kincaid, th.MaxKincaid)
		diags = appendMin(diags, fr.Path, "flesch", st.Flesch, th.MinFlesch)
		diags = appendMax(diags, fr.Path, "words-per-sentence", st.WordsPerSentence, th.MaxWordsPerSentence)
		diags = appendMax(diags, fr.Path, "percent-complex", st.PercentComplexWords, th.MaxPercentComplex)
	}

	sort.Slice(diags, func(i, j int) bool {
		if diags[i].File != diags[j].File {
			return diags[i].File < diags[j].File
		}
		return diags[i].Metric < diags[j].Metric
	})
	return diags
}

func appendMax(diags []Diagnostic, file, metric string, value float64, limit *float64) []Diagnostic {
	if limit == nil || value <= *limit {
		return diags
	}
	return append(diags, Diagnostic{
		File:    file,
		Metric:  metric,
		Value:   value,
		Limit:   *limit,
		Message: fmt.Sprintf("%s %.2f exceeds limit %.2f", metric, value, *limit),
	})
}

func appendMin(diags []Diagnostic, file, metric string, value float64, limit *float64) []Diagnostic {
	if limit == nil || value >= *limit {
		return diags
	}
	return append(diags, Diagnostic{
		File:    file,
		Metric:  metric,
		Value:   value,
		Limit:   *limit,
		Message: fmt.Sprintf("%s %.2f below minimum %.2f", metric, value, *limit),
	})
}
