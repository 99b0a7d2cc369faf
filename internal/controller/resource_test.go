package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoad_StoresData(t *testing.T) {
	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	defer r.Close()

	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, err := r.Data()
	if err != nil {
		t.Fatalf("Data err: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("len = %d, want 3", len(data))
	}
	if !r.Loaded() {
		t.Error("Loaded = false after successful load")
	}
}

func TestLoad_FailureKeepsStaleData(t *testing.T) {
	var fail atomic.Bool
	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		if fail.Load() {
			return nil, errors.New("backend down")
		}
		return []int{1, 2}, nil
	})
	defer r.Close()

	if err := r.Load(); err != nil {
		t.Fatalf("initial Load: %v", err)
	}

	fail.Store(true)
	if err := r.Load(); err == nil {
		t.Fatal("expected load error")
	}

	data, err := r.Data()
	if err == nil {
		t.Error("Data should report the failed load")
	}
	if len(data) != 2 {
		t.Errorf("stale data len = %d, want 2", len(data))
	}
}

func TestMutate_ReloadsExactlyOnceAfterAction(t *testing.T) {
	var loads, actions int32
	var orderOK atomic.Bool

	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		atomic.AddInt32(&loads, 1)
		// The reload must observe the completed action.
		if atomic.LoadInt32(&actions) == 1 {
			orderOK.Store(true)
		}
		return []int{1}, nil
	})
	defer r.Close()

	err := r.Mutate(func(ctx context.Context) error {
		atomic.AddInt32(&actions, 1)
		if r.Pending() != true {
			t.Error("Pending = false during mutation")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Errorf("loads = %d, want exactly 1", got)
	}
	if !orderOK.Load() {
		t.Error("reload ran before the action resolved")
	}
	if r.Pending() {
		t.Error("Pending = true after mutation completed")
	}
}

func TestMutate_FailedActionSkipsReload(t *testing.T) {
	var loads int32
	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		atomic.AddInt32(&loads, 1)
		return nil, nil
	})
	defer r.Close()

	wantErr := errors.New("Cannot remove last manager")
	err := r.Mutate(func(ctx context.Context) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if got := atomic.LoadInt32(&loads); got != 0 {
		t.Errorf("loads = %d, want 0 after failed mutation", got)
	}
}

func TestMutate_RejectsConcurrent(t *testing.T) {
	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		return nil, nil
	})
	defer r.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- r.Mutate(func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	if err := r.Mutate(func(ctx context.Context) error { return nil }); !errors.Is(err, ErrInFlight) {
		t.Errorf("concurrent Mutate err = %v, want ErrInFlight", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Errorf("first Mutate err = %v", err)
	}
}

func TestClose_CancelsInFlightLoad(t *testing.T) {
	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		<-ctx.Done()
		return []int{99}, nil
	})

	done := make(chan error, 1)
	go func() { done <- r.Load() }()

	time.Sleep(10 * time.Millisecond)
	r.Close()

	select {
	case err := <-done:
		if !errors.Is(err, ErrClosed) {
			t.Errorf("err = %v, want ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Load did not return after Close")
	}

	// A late result must not have been stored.
	if r.Loaded() {
		t.Error("data stored after Close")
	}
}

func TestMutate_AfterClose(t *testing.T) {
	r := New(context.Background(), func(ctx context.Context) ([]int, error) {
		return nil, nil
	})
	r.Close()

	if err := r.Mutate(func(ctx context.Context) error { return nil }); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	if err := r.Load(); !errors.Is(err, ErrClosed) {
		t.Errorf("Load err = %v, want ErrClosed", err)
	}
}
