package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/gazette/internal/config"
	"github.com/five82/gazette/internal/news"
	"github.com/five82/gazette/internal/prefs"
	"github.com/five82/gazette/internal/state"
	"github.com/five82/gazette/internal/ui"
)

// Options configure the Gazette application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gazette/prefs.toml
	LatencyMS  int    // simulated source latency; zero uses config/default
}

// Run boots the Gazette TUI until the context is cancelled. Everything is
// constructed here and passed down explicitly; no package holds a singleton.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LatencyMS > 0 {
		cfg.SourceLatency = time.Duration(opts.LatencyMS) * time.Millisecond
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	repo := news.NewMemoryRepository(news.DefaultCatalog(), cfg.SourceLatency)
	feed := state.NewLoader(repo.Articles)

	uiOpts := ui.Options{
		Context:      ctx,
		Repo:         repo,
		Feed:         feed,
		RefreshEvery: cfg.RefreshEvery,
		ThemeName:    userPrefs.Theme,
		FilterName:   userPrefs.Filter,
		PrefsPath:    opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
