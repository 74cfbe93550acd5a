package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SourceLatency != defaultLatency {
		t.Fatalf("SourceLatency = %v, want %v", cfg.SourceLatency, defaultLatency)
	}
	if cfg.RefreshEvery != 0 {
		t.Fatalf("RefreshEvery = %v, want 0 (manual refresh only)", cfg.RefreshEvery)
	}
}

func TestLoad_ParsesConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
latency_ms = 120
refresh_seconds = 30
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SourceLatency != 120*time.Millisecond {
		t.Fatalf("SourceLatency = %v, want 120ms", cfg.SourceLatency)
	}
	if cfg.RefreshEvery != 30*time.Second {
		t.Fatalf("RefreshEvery = %v, want 30s", cfg.RefreshEvery)
	}
}

func TestLoad_ZeroAndMissingValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
latency_ms = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SourceLatency != defaultLatency {
		t.Fatalf("SourceLatency = %v, want default %v", cfg.SourceLatency, defaultLatency)
	}
	if cfg.RefreshEvery != 0 {
		t.Fatalf("RefreshEvery = %v, want 0", cfg.RefreshEvery)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`latency_ms = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
