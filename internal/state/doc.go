// Package state provides the thread-safe load-state machinery for Gazette.
//
// # Overview
//
// The package implements a small, generic adapter between a repository call
// and the UI: Loader runs a bound asynchronous operation and publishes its
// progress as a tri-state Snapshot (empty, loaded, failed, each with an
// independent loading flag). The UI never talks to the repository directly
// for feed data; it refreshes a loader and renders whatever snapshot comes
// back.
//
// # State Machine
//
//	Empty    Data=nil  Err=nil   Loading=false   (zero value)
//	Loading  previous Data/Err   Loading=true
//	Loaded   Data=v    Err=nil   Loading=false
//	Failed   Data=prev Err=e     Loading=false
//
// Transitions:
//
//   - Refresh: any state → Loading, then Loaded on success or Failed on
//     error once the operation returns.
//   - ClearError: Failed → Loaded when data exists, Failed → Empty when it
//     does not. The operation is not re-run.
//
// # Stale Data Semantics
//
// A failed refresh keeps the previously loaded data and records the error
// next to it. Data and Err are therefore not mutually exclusive; the UI
// shows the stale feed behind a dismissible error banner instead of blanking
// the screen.
//
// # Concurrency Model
//
// A mutex guards the snapshot; Snapshot() returns a defensive copy (value
// copy of the data, rewrapped error) so the render loop never shares mutable
// state with an in-flight refresh. Refresh holds the lock only around state
// transitions, never across the operation itself.
//
// Cancellation: when the refresh context is cancelled while the operation is
// in flight, the result is discarded and the snapshot is left untouched. A
// torn-down scope can therefore never mutate state it no longer owns.
//
// Overlap: the loader intentionally does not serialize concurrent Refresh
// calls. Callers that need single-flight behavior gate it themselves (the UI
// ignores the refresh key while a load is already showing).
//
// # Usage
//
//	feed := state.NewLoader(repo.Articles)
//	snap := feed.Refresh(ctx)   // blocks; run inside a tea.Cmd
//	if snap.HasError() { ... }
//
//	one := state.NewLoader(func(ctx context.Context) (news.Article, error) {
//		return repo.ArticleByID(ctx, id)
//	})
package state
