package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Gazette reads at startup.
type Config struct {
	// SourceLatency is the simulated fetch latency of the built-in article
	// source. Real sources bring their own latency; the fake imposes one so
	// the UI is exercised against asynchronous loads.
	SourceLatency time.Duration

	// RefreshEvery is the automatic feed refresh cadence. Zero disables
	// automatic refresh; the feed then only reloads on demand.
	RefreshEvery time.Duration
}

const (
	defaultConfigPath = "~/.config/gazette/config.toml"
	defaultLatency    = 350 * time.Millisecond
)

// Load locates and parses the Gazette config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{SourceLatency: defaultLatency}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LatencyMS      int `toml:"latency_ms"`
		RefreshSeconds int `toml:"refresh_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.LatencyMS > 0 {
		cfg.SourceLatency = time.Duration(raw.LatencyMS) * time.Millisecond
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
