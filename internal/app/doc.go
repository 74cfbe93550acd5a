// Package app provides the orchestration layer for the Gazette application.
//
// # Overview
//
// This package is the composition root: it loads configuration and user
// preferences, constructs the article repository and the feed loader, and
// hands everything to the UI. Dependencies flow top-down as explicit
// arguments, with no package-level singletons and no ambient service
// locator. The
// repository is built exactly once here and every consumer receives it by
// parameter.
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()              latency + refresh cadence
//	 ├─> prefs.Load()               theme + filter (graceful defaults)
//	 ├─> news.NewMemoryRepository() catalog + favorites owner
//	 ├─> state.NewLoader()          feed loader bound to repo.Articles
//	 └─> ui.Run()                   TUI (blocks until exit)
//
// # Error Handling
//
// Run fails fast on an unparseable config file; everything after that point
// is recoverable. Preference problems degrade to defaults, and load failures
// at runtime surface through loader snapshots rather than terminating the
// process.
package app
