package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// makeTree builds a small fixture tree and returns its root.
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"a.txt",
		"notes.md",
		"raw.log",
		filepath.Join("sub", "b.txt"),
		filepath.Join("sub", "deep", "c.markdown"),
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("content\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestResolve_Directory(t *testing.T) {
	root := makeTree(t)
	got, err := Resolve([]string{root})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// raw.log has no prose extension and is skipped.
	if len(got) != 4 {
		t.Fatalf("got %d files, want 4: %v", len(got), got)
	}
}

func TestResolve_ExplicitFileAnyExtension(t *testing.T) {
	root := makeTree(t)
	log := filepath.Join(root, "raw.log")
	got, err := Resolve([]string{log})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || got[0] != log {
		t.Fatalf("got %v, want [%s]", got, log)
	}
}

func TestResolve_DoublestarPattern(t *testing.T) {
	root := makeTree(t)
	got, err := Resolve([]string{filepath.Join(root, "**", "*.txt")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(got), got)
	}
}

func TestResolve_Deduplicates(t *testing.T) {
	root := makeTree(t)
	file := filepath.Join(root, "a.txt")
	got, err := Resolve([]string{file, file, root})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	count := 0
	for _, f := range got {
		if f == file {
			count++
		}
	}
	if count != 1 {
		t.Errorf("a.txt appears %d times, want 1: %v", count, got)
	}
}

func TestResolve_MissingPathIsError(t *testing.T) {
	if _, err := Resolve([]string{filepath.Join(t.TempDir(), "nope.txt")}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestResolve_UnmatchedPatternIsNotError(t *testing.T) {
	root := makeTree(t)
	got, err := Resolve([]string{filepath.Join(root, "*.rst")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
