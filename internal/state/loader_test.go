package state

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestLoader_ZeroValueIsEmpty(t *testing.T) {
	l := NewLoader(func(ctx context.Context) (int, error) { return 0, nil })

	snap := l.Snapshot()
	if !snap.InitialLoad() {
		t.Fatalf("fresh loader snapshot = %+v, want initial-load state", snap)
	}
	if snap.Loading || snap.HasError() || snap.Data != nil {
		t.Fatalf("fresh loader snapshot = %+v, want empty", snap)
	}
}

func TestRefresh_SuccessLoadsData(t *testing.T) {
	l := NewLoader(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	snap := l.Refresh(context.Background())
	if snap.Loading {
		t.Fatalf("Loading = true after completed refresh")
	}
	if snap.HasError() {
		t.Fatalf("Err = %v after success, want nil", snap.Err)
	}
	if snap.Data == nil || len(*snap.Data) != 2 {
		t.Fatalf("Data = %v, want two elements", snap.Data)
	}
	if snap.InitialLoad() {
		t.Fatalf("InitialLoad() = true after data loaded")
	}
}

func TestRefresh_FailurePreservesPreviousData(t *testing.T) {
	boom := errors.New("boom")
	fail := false
	l := NewLoader(func(ctx context.Context) (string, error) {
		if fail {
			return "", boom
		}
		return "cached", nil
	})

	l.Refresh(context.Background())
	fail = true
	snap := l.Refresh(context.Background())

	if !snap.HasError() {
		t.Fatalf("HasError() = false after failed refresh")
	}
	if !errors.Is(snap.Err, boom) {
		t.Fatalf("Err = %v, want wrapped boom", snap.Err)
	}
	if snap.Data == nil || *snap.Data != "cached" {
		t.Fatalf("Data = %v, want previous value preserved alongside the error", snap.Data)
	}
	if snap.Loading {
		t.Fatalf("Loading = true after completed refresh")
	}
}

func TestRefresh_FailureWithoutPriorData(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoader(func(ctx context.Context) (string, error) {
		return "", boom
	})

	snap := l.Refresh(context.Background())
	if snap.Data != nil {
		t.Fatalf("Data = %v, want nil after first-load failure", snap.Data)
	}
	if !snap.HasError() || snap.InitialLoad() {
		t.Fatalf("snapshot = %+v, want failed non-initial state", snap)
	}
}

func TestRefresh_SuccessClearsPreviousError(t *testing.T) {
	fail := true
	l := NewLoader(func(ctx context.Context) (int, error) {
		if fail {
			return 0, errors.New("boom")
		}
		return 42, nil
	})

	l.Refresh(context.Background())
	fail = false
	snap := l.Refresh(context.Background())

	if snap.HasError() {
		t.Fatalf("Err = %v after recovery, want nil", snap.Err)
	}
	if snap.Data == nil || *snap.Data != 42 {
		t.Fatalf("Data = %v, want 42", snap.Data)
	}
}

func TestRefresh_CancelledContextDoesNotMutateState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoader(func(ctx context.Context) (string, error) {
		return "fresh", nil
	})

	cancel()
	snap := l.Refresh(ctx)

	if snap.Data != nil {
		t.Fatalf("Data = %v after cancelled refresh, want no commit", snap.Data)
	}

	// The committed state must be untouched too, not just the returned copy.
	after := l.Snapshot()
	if after.Data != nil || after.HasError() {
		t.Fatalf("snapshot after cancelled refresh = %+v, want untouched", after)
	}
}

func TestClearError_KeepsData(t *testing.T) {
	fail := false
	l := NewLoader(func(ctx context.Context) (string, error) {
		if fail {
			return "", errors.New("boom")
		}
		return "kept", nil
	})

	l.Refresh(context.Background())
	fail = true
	l.Refresh(context.Background())

	l.ClearError()
	snap := l.Snapshot()
	if snap.HasError() {
		t.Fatalf("Err = %v after ClearError, want nil", snap.Err)
	}
	if snap.Data == nil || *snap.Data != "kept" {
		t.Fatalf("Data = %v after ClearError, want kept", snap.Data)
	}
}

func TestClearError_WithoutDataReturnsToEmpty(t *testing.T) {
	l := NewLoader(func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	})

	l.Refresh(context.Background())
	l.ClearError()

	if snap := l.Snapshot(); !snap.InitialLoad() {
		t.Fatalf("snapshot = %+v after ClearError with no data, want empty state", snap)
	}
}

func TestSnapshot_ReturnsDefensiveCopy(t *testing.T) {
	l := NewLoader(func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	l.Refresh(context.Background())

	first := l.Snapshot()
	*first.Data = nil

	second := l.Snapshot()
	if second.Data == nil || len(*second.Data) != 3 {
		t.Fatalf("snapshot mutation leaked into loader: %v", second.Data)
	}
}

func TestRefresh_SetsLoadingWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	l := NewLoader(func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 7, nil
	})

	done := make(chan Snapshot[int], 1)
	go func() { done <- l.Refresh(context.Background()) }()

	<-started
	if snap := l.Snapshot(); !snap.Loading {
		t.Errorf("Loading = false while operation in flight, want true")
	}
	close(release)

	snap := <-done
	if snap.Loading {
		t.Fatalf("Loading = true after refresh completed")
	}
	if snap.Data == nil || *snap.Data != 7 {
		t.Fatalf("Data = %v, want 7", snap.Data)
	}
}

func TestSnapshotFlags(t *testing.T) {
	tests := []struct {
		name        string
		snap        Snapshot[int]
		initialLoad bool
		hasError    bool
	}{
		{"zero value", Snapshot[int]{}, true, false},
		{"loading first time", Snapshot[int]{Loading: true}, true, false},
		{"loaded", Snapshot[int]{Data: ptr(1)}, false, false},
		{"failed, no data", Snapshot[int]{Err: fmt.Errorf("x")}, false, true},
		{"failed with stale data", Snapshot[int]{Data: ptr(1), Err: fmt.Errorf("x")}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.InitialLoad(); got != tt.initialLoad {
				t.Errorf("InitialLoad() = %v, want %v", got, tt.initialLoad)
			}
			if got := tt.snap.HasError(); got != tt.hasError {
				t.Errorf("HasError() = %v, want %v", got, tt.hasError)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
