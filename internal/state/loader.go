package state

import (
	"context"
	"fmt"
	"sync"
)

// Snapshot is the tri-state result of an asynchronous load as seen by the
// UI: not yet loaded, loaded with data, or failed with an error. Data and
// Err are not mutually exclusive: after a failed refresh the previous Data
// is kept alongside the fresh Err so the UI can keep rendering stale content
// behind the error banner.
type Snapshot[T any] struct {
	Data    *T
	Err     error
	Loading bool
}

// InitialLoad reports whether nothing has ever been loaded: no data and no
// error yet.
func (s Snapshot[T]) InitialLoad() bool {
	return s.Data == nil && s.Err == nil
}

// HasError reports whether the last load attempt failed.
func (s Snapshot[T]) HasError() bool {
	return s.Err != nil
}

func (s Snapshot[T]) copy() Snapshot[T] {
	out := s
	if s.Data != nil {
		v := *s.Data
		out.Data = &v
	}
	if s.Err != nil {
		out.Err = fmt.Errorf("%w", s.Err)
	}
	return out
}

// Loader runs a bound asynchronous operation and exposes its progress as a
// Snapshot. The zero snapshot is the initial "empty" state; Refresh moves
// through loading into loaded or failed.
type Loader[T any] struct {
	op func(context.Context) (T, error)

	mu   sync.Mutex
	snap Snapshot[T]
}

// NewLoader binds op to a fresh loader. The operation captures whatever
// arguments it needs in its closure; the loader only ever hands it a
// context.
func NewLoader[T any](op func(context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{op: op}
}

// Snapshot returns a copy of the current state.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap.copy()
}

// Refresh runs the bound operation and returns the resulting snapshot. On
// success the new data replaces the old and any previous error is cleared.
// On failure the previous data is preserved and the error recorded. When ctx
// is cancelled while the operation is in flight the result is discarded and
// the state is not mutated after the cancellation point.
//
// Overlapping Refresh calls are permitted; the loader does not deduplicate
// in-flight work, and whichever call commits last wins.
func (l *Loader[T]) Refresh(ctx context.Context) Snapshot[T] {
	l.mu.Lock()
	l.snap.Loading = true
	l.mu.Unlock()

	v, err := l.op(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		return l.snap.copy()
	}

	l.snap.Loading = false
	if err != nil {
		l.snap.Err = err
	} else {
		l.snap.Data = &v
		l.snap.Err = nil
	}
	return l.snap.copy()
}

// ClearError drops the recorded error without re-running the operation,
// returning the state to loaded or empty depending on whether data is set.
func (l *Loader[T]) ClearError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.snap.Err = nil
}
