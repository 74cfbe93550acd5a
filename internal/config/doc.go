// Package config handles loading and parsing Gazette's configuration file.
//
// # Overview
//
// Gazette keeps configuration deliberately small: the simulated latency of
// the built-in article source and an optional automatic refresh cadence.
// Everything else (theme, filter) is a user preference and lives in the
// prefs package instead.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gazette/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/zero, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	latency_ms = 350
//	refresh_seconds = 0
//
// Both fields are optional. latency_ms is the artificial delay the
// in-memory source waits before answering; refresh_seconds enables
// background feed refresh when positive and disables it at zero.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. A missing config file is NOT an error; defaults are
// used so Gazette works out of the box with no configuration at all.
package config
