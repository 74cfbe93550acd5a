// Package news holds Gazette's domain model and data access boundary.
//
// # Overview
//
// The package defines the immutable Article record, the Favorites set, the
// Repository interface consumed by the UI, and MemoryRepository, the
// in-memory implementation backed by the built-in catalog.
//
// # Repository Contract
//
// Repository is deliberately small:
//
//	Articles(ctx)          full catalog, catalog order
//	ArticleByID(ctx, id)   single lookup, ErrNotFound when absent
//	ObserveFavorites(ctx)  subscription channel, current value replayed
//	ToggleFavorite(ctx, id) symmetric-difference update
//
// Reads never panic and signal every failure as a returned error. The two
// sentinel errors, ErrNotFound and ErrOperationFailed, are matched with
// errors.Is after unwrapping.
//
// # Favorites Observation
//
// ObserveFavorites gives each subscriber an independent buffered channel.
// Subscribers receive the current set immediately, then the new set after
// every toggle. Delivery conflates: the buffer holds exactly one value, and
// a publish against a full buffer replaces the stale value instead of
// blocking. A slow consumer therefore skips intermediate sets and always
// lands on the latest one.
//
// Cancelling the subscription context closes the channel. Close and publish
// are both performed under the repository mutex, so a publish can never race
// a close.
//
// # Simulated Latency
//
// MemoryRepository waits a configurable duration before serving each read
// or toggle, honoring context cancellation during the wait. The catalog is
// already in memory; the delay exists so the presentation layer is written
// against the asynchronous contract a real source (network client, local
// database) would impose, instead of accidentally depending on synchronous
// answers.
//
// # Mutation Model
//
// The favorite set is the only mutable state. Toggle builds a modified copy
// and replaces the set reference under the mutex, so concurrent observers
// see either the old or the new set, never a torn one. Published snapshots
// are themselves copies; receivers may mutate them freely.
package news
