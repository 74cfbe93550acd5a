package news

import "context"

// Repository is the capability boundary for articles and favorites. The UI
// consumes it; MemoryRepository implements it over the built-in catalog, and
// future real sources (a network client, a local database) slot in behind
// the same interface.
//
// All reads return errors by value and never panic. Every method honors
// context cancellation; reads are idempotent and safe to retry. Toggle is
// its own inverse, so a duplicated key press undoes itself; debouncing a
// double-toggle is the caller's concern.
type Repository interface {
	// Articles returns the full catalog in catalog order.
	Articles(ctx context.Context) ([]Article, error)

	// ArticleByID returns the article with the given ID, or an error
	// wrapping ErrNotFound when no such article exists.
	ArticleByID(ctx context.Context, id string) (Article, error)

	// ObserveFavorites returns a channel that carries the current favorite
	// set immediately on subscription and again after every change. Each
	// call returns an independent subscription with single-current-value
	// semantics: a slow receiver misses intermediate sets and only sees the
	// latest. The channel is closed when ctx is cancelled.
	ObserveFavorites(ctx context.Context) <-chan Favorites

	// ToggleFavorite adds id to the favorite set when absent and removes it
	// when present. All active observers see the new set after it returns.
	ToggleFavorite(ctx context.Context, id string) error
}
