package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".readability.yml"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .readability.yml config file. It stops at a .git directory (the
// repository root) or the filesystem root. Returns the path to the
// config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repository root; stop there.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns the configuration used when no file is present:
// no ignores, no thresholds, Markdown off.
func Defaults() *Config {
	return &Config{}
}

// DumpDefaults returns a populated Config for the init command:
// conventional threshold values with everything else left open.
func DumpDefaults() *Config {
	maxFog := 12.0
	minFlesch := 50.0
	maxKincaid := 9.0
	return &Config{
		Thresholds: Thresholds{
			MaxFog:     &maxFog,
			MinFlesch:  &minFlesch,
			MaxKincaid: &maxKincaid,
		},
	}
}

// Merge overlays loaded onto base and returns the result. A nil
// loaded config leaves base unchanged.
func Merge(base, loaded *Config) *Config {
	if base == nil {
		base = Defaults()
	}
	out := *base
	if loaded == nil {
		return &out
	}

	if loaded.Markdown != nil {
		out.Markdown = loaded.Markdown
	}
	if len(loaded.Ignore) > 0 {
		out.Ignore = loaded.Ignore
	}
	out.Thresholds = mergeThresholds(out.Thresholds, loaded.Thresholds)
	if len(loaded.Overrides) > 0 {
		out.Overrides = loaded.Overrides
	}
	return &out
}
