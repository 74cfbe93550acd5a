package news

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Ensure MemoryRepository implements Repository at compile time.
var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository serves articles from an in-memory catalog and keeps the
// favorite set in process memory. Reads wait out a configurable simulated
// latency so callers exercise the same asynchronous contract a real data
// source would impose.
type MemoryRepository struct {
	catalog []Article
	latency time.Duration

	mu        sync.Mutex
	favorites Favorites
	subs      map[chan Favorites]struct{}
}

// NewMemoryRepository builds a repository over the given catalog. A zero or
// negative latency disables the simulated delay (useful in tests).
func NewMemoryRepository(catalog []Article, latency time.Duration) *MemoryRepository {
	return &MemoryRepository{
		catalog:   append([]Article(nil), catalog...),
		latency:   latency,
		favorites: make(Favorites),
		subs:      make(map[chan Favorites]struct{}),
	}
}

// Articles returns the full catalog in catalog order. It never fails beyond
// context cancellation; the error return exists for interface parity with
// real sources that can fail on I/O.
func (r *MemoryRepository) Articles(ctx context.Context) ([]Article, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return append([]Article(nil), r.catalog...), nil
}

// ArticleByID looks up a single article by linear search.
func (r *MemoryRepository) ArticleByID(ctx context.Context, id string) (Article, error) {
	if err := r.wait(ctx); err != nil {
		return Article{}, err
	}
	for _, a := range r.catalog {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, fmt.Errorf("article %q: %w", id, ErrNotFound)
}

// ObserveFavorites subscribes to favorite-set changes. The current set is
// delivered immediately; later sets are delivered with conflation, so only
// the latest value is ever buffered. The returned channel is closed once
// ctx is cancelled and nothing is emitted after that.
func (r *MemoryRepository) ObserveFavorites(ctx context.Context) <-chan Favorites {
	ch := make(chan Favorites, 1)

	r.mu.Lock()
	ch <- r.favorites.clone()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, ch)
		close(ch)
	}()

	return ch
}

// ToggleFavorite flips membership of id in the favorite set. The set is
// replaced wholesale under the lock, so observers see the pre- or
// post-toggle value, never a partial update.
func (r *MemoryRepository) ToggleFavorite(ctx context.Context, id string) error {
	if err := r.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.favorites.clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	r.favorites = next

	for ch := range r.subs {
		publish(ch, next.clone())
	}
	return nil
}

// publish delivers snap with latest-value semantics: when the subscriber has
// not consumed the previous value it is dropped in favor of snap. Callers
// must hold r.mu, which also serializes publish against channel close.
func publish(ch chan Favorites, snap Favorites) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// wait blocks for the simulated source latency or until ctx is cancelled.
func (r *MemoryRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
