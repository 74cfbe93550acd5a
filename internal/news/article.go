package news

import (
	"errors"
	"time"
)

// Article is a single immutable news item. Articles are constructed once at
// startup from the catalog and never mutated afterwards.
type Article struct {
	ID          string
	Title       string
	Author      string
	Excerpt     string
	ImageURL    string
	ThumbURL    string
	PublishedAt time.Time
	ReadMinutes int
}

// Favorites is the set of article IDs the reader has marked.
type Favorites map[string]struct{}

// Has reports whether the article with the given ID is marked favorite.
func (f Favorites) Has(id string) bool {
	_, ok := f[id]
	return ok
}

func (f Favorites) clone() Favorites {
	out := make(Favorites, len(f))
	for id := range f {
		out[id] = struct{}{}
	}
	return out
}

// Sentinel errors returned by repository operations. Callers match with
// errors.Is; the wrapped message carries the offending ID.
var (
	// ErrNotFound indicates the requested article ID is absent from the source.
	ErrNotFound = errors.New("article not found")

	// ErrOperationFailed wraps unexpected failures from a real data source.
	// The in-memory repository never returns it; it exists so callers can
	// already distinguish "missing" from "broken" when a real source lands.
	ErrOperationFailed = errors.New("operation failed")
)
