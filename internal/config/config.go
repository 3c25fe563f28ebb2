// Package config loads and merges the .readability.yml configuration:
// ignore patterns, Markdown handling, and the readability thresholds
// the check command enforces, with per-pattern overrides.
package config

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Config is the top-level configuration.
type Config struct {
	// Markdown treats inputs as Markdown, extracting prose before
	// analysis. Nil means off unless the CLI flag enables it.
	Markdown *bool `yaml:"markdown"`

	// Ignore lists glob patterns for files to skip entirely.
	Ignore []string `yaml:"ignore"`

	// Thresholds are the base limits for the check command.
	Thresholds Thresholds `yaml:"thresholds"`

	// Overrides adjust thresholds for files matching glob patterns,
	// applied in order after the base thresholds.
	Overrides []Override `yaml:"overrides"`
}

// Thresholds are the numeric limits the check command enforces. Nil
// fields are not enforced.
type Thresholds struct {
	MaxFog              *float64 `yaml:"max-fog"`
	MaxKincaid          *float64 `yaml:"max-kincaid"`
	MinFlesch           *float64 `yaml:"min-flesch"`
	MaxWordsPerSentence *float64 `yaml:"max-words-per-sentence"`
	MaxPercentComplex   *float64 `yaml:"max-percent-complex"`
}

// Override applies threshold settings to files matching glob patterns.
type Override struct {
	Files      []string   `yaml:"files"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// IsIgnored returns true if the file path matches any of the
// configured ignore patterns.
func (c *Config) IsIgnored(path string) bool {
	return matchesAny(c.Ignore, path)
}

// EffectiveThresholds resolves the thresholds for one file: the base
// thresholds with every matching override applied in order.
func (c *Config) EffectiveThresholds(path string) Thresholds {
	effective := c.Thresholds
	for _, o := range c.Overrides {
		if matchesAny(o.Files, path) {
			effective = mergeThresholds(effective, o.Thresholds)
		}
	}
	return effective
}

// mergeThresholds overlays the set fields of over onto base.
func mergeThresholds(base, over Thresholds) Thresholds {
	if over.MaxFog != nil {
		base.MaxFog = over.MaxFog
	}
	if over.MaxKincaid != nil {
		base.MaxKincaid = over.MaxKincaid
	}
	if over.MinFlesch != nil {
		base.MinFlesch = over.MinFlesch
	}
	if over.MaxWordsPerSentence != nil {
		base.MaxWordsPerSentence = over.MaxWordsPerSentence
	}
	if over.MaxPercentComplex != nil {
		base.MaxPercentComplex = over.MaxPercentComplex
	}
	return base
}

// matchesAny returns true if path matches any of the glob patterns.
// The match is tried against the path as given, cleaned, and its base
// name.
func matchesAny(patterns []string, path string) bool {
	cleanPath := filepath.Clean(path)
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}
