package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
markdown: true
ignore:
  - "vendor/**"
  - "*.log"
thresholds:
  max-fog: 12
  min-flesch: 50
overrides:
  - files: ["docs/*.md"]
    thresholds:
      max-fog: 9
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Markdown == nil || !*cfg.Markdown {
		t.Error("markdown not parsed")
	}
	if len(cfg.Ignore) != 2 {
		t.Errorf("ignore = %v, want 2 patterns", cfg.Ignore)
	}
	if cfg.Thresholds.MaxFog == nil || *cfg.Thresholds.MaxFog != 12 {
		t.Errorf("max-fog = %v, want 12", cfg.Thresholds.MaxFog)
	}
	if cfg.Thresholds.MaxKincaid != nil {
		t.Error("max-kincaid should stay unset")
	}
	if len(cfg.Overrides) != 1 {
		t.Fatalf("overrides = %v, want 1", cfg.Overrides)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ":\n  - not yaml")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDiscover_FindsInParent(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, sampleYAML)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if got != filepath.Join(root, configFileName) {
		t.Errorf("got %q", got)
	}
}

func TestDiscover_StopsAtGitBoundary(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, sampleYAML)

	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(repo, "src")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want no config past the .git boundary", got)
	}
}

func TestMerge_LoadedOverlaysDefaults(t *testing.T) {
	base := DumpDefaults()
	nine := 9.0
	loaded := &Config{Thresholds: Thresholds{MaxFog: &nine}}

	merged := Merge(base, loaded)
	if *merged.Thresholds.MaxFog != 9 {
		t.Errorf("max-fog = %v, want 9", *merged.Thresholds.MaxFog)
	}
	if merged.Thresholds.MinFlesch == nil || *merged.Thresholds.MinFlesch != 50 {
		t.Error("min-flesch default lost in merge")
	}
}

func TestMerge_NilLoaded(t *testing.T) {
	merged := Merge(DumpDefaults(), nil)
	if merged.Thresholds.MaxFog == nil {
		t.Error("defaults lost when loaded config is nil")
	}
}

func TestIsIgnored(t *testing.T) {
	cfg := &Config{Ignore: []string{"vendor/**", "*.log"}}
	if !cfg.IsIgnored("vendor/pkg/readme.txt") {
		t.Error("vendor path not ignored")
	}
	if !cfg.IsIgnored("build/output.log") {
		t.Error("*.log base-name match failed")
	}
	if cfg.IsIgnored("docs/guide.txt") {
		t.Error("docs path wrongly ignored")
	}
}

func TestEffectiveThresholds_OverrideApplies(t *testing.T) {
	twelve, nine := 12.0, 9.0
	cfg := &Config{
		Thresholds: Thresholds{MaxFog: &twelve},
		Overrides: []Override{
			{Files: []string{"docs/*"}, Thresholds: Thresholds{MaxFog: &nine}},
		},
	}

	if got := cfg.EffectiveThresholds("docs/guide.md"); *got.MaxFog != 9 {
		t.Errorf("override max-fog = %v, want 9", *got.MaxFog)
	}
	if got := cfg.EffectiveThresholds("readme.md"); *got.MaxFog != 12 {
		t.Errorf("base max-fog = %v, want 12", *got.MaxFog)
	}
}
