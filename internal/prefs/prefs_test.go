package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Filter != defaultFilter {
		t.Fatalf("Filter = %q, want %q", p.Filter, defaultFilter)
	}
}

func TestLoad_InvalidTOMLDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme || p.Filter != defaultFilter {
		t.Fatalf("Load of broken file = %+v, want defaults", p)
	}
}

func TestLoad_UnknownFilterNormalizedToAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
theme = "Slate"
filter = "starred"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
	if p.Filter != "all" {
		t.Fatalf("Filter = %q, want all (normalized)", p.Filter)
	}
}

func TestSaveAndLoad_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa", Filter: "favorites"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(path)
	if p.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", p.Theme)
	}
	if p.Filter != "favorites" {
		t.Fatalf("Filter = %q, want favorites", p.Filter)
	}
}

func TestSave_NormalizesBeforeWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	if err := Save(path, Prefs{Theme: "  ", Filter: "bogus"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default %q", p.Theme, defaultTheme)
	}
	if p.Filter != "all" {
		t.Fatalf("Filter = %q, want all", p.Filter)
	}
}
