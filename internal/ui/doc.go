// Package ui provides the terminal user interface for Gazette.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is the root state; all repository
// work runs inside tea.Cmd functions off the render loop, and results come
// back as messages. The package never mutates domain state directly: it
// refreshes loaders, sends toggles through the Repository, and renders
// whatever snapshots come back.
//
// # Package Structure
//
//   - app.go: Model, key handling, messages, commands, and the Run function
//   - feed.go: home feed cards with loading/empty/error states
//   - detail.go: article detail view on a bubbles viewport
//   - drawer.go: navigation drawer overlay
//   - statusbar.go: header line and status/error bar
//   - help.go: help overlay
//   - theme.go: lipgloss themes, cycleable at runtime
//
// # Views
//
//   - Feed: article cards (title, favorite star, author, age, read time)
//     with an all/favorites filter
//   - Detail: one article, loaded through its own bound loader
//
// Overlays: navigation drawer (tab) and help (?).
//
// # State Handling
//
// The feed and each opened article use a state.Loader. A failed refresh
// keeps stale content on screen and raises a dismissible error banner with
// retry; an error with no prior data renders as a full-pane error state.
// Favorites arrive over the repository's observe channel; every update
// re-arms a command waiting on the next value, and the channel closing ends
// the cycle at shutdown.
//
// # Key Bindings
//
//   - j/k, arrows: move through the feed (or scroll the detail view)
//   - g/G: first/last article
//   - enter or o: open article; esc/backspace: back
//   - space: toggle favorite
//   - f: all ↔ favorites filter
//   - r: refresh; x: dismiss error
//   - tab: navigation drawer; ?: help
//   - T: cycle theme (persisted)
//   - q or Ctrl+C: exit
package ui
