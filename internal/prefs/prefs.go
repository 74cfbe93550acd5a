// Package prefs handles Gazette user preferences persistence.
// Preferences are stored in ~/.config/gazette/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for Gazette. Only presentation choices live
// here; articles and favorites are never persisted.
type Prefs struct {
	Theme  string `toml:"theme"`
	Filter string `toml:"filter"` // "all" or "favorites"
}

const (
	defaultPrefsPath = "~/.config/gazette/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultFilter    = "all"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, Filter: defaultFilter}
}

func (p *Prefs) normalize() {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	switch strings.TrimSpace(p.Filter) {
	case "favorites":
		p.Filter = "favorites"
	default:
		p.Filter = defaultFilter
	}
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. A broken prefs file costs the user their theme
// choice, nothing more, so Load never fails.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return defaults()
	}

	file, err := os.Open(resolved)
	if err != nil {
		return defaults()
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return defaults()
	}

	prefs := defaults()
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults()
	}
	prefs.normalize()

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	p.normalize()

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
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
