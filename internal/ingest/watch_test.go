package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

type watchEvent struct {
	res Result
	err error
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Alice"), 0644); err != nil {
		t.Fatal(err)
	}

	events := make(chan watchEvent, 8)
	w, err := NewWatcher(path, DefaultOptions(), 20*time.Millisecond, func(res Result, err error) {
		events <- watchEvent{res, err}
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("Bob\nCarol"), 0644); err != nil {
		t.Fatal(err)
	}

	// A truncating write can surface an intermediate empty read first.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.err != nil {
				t.Fatalf("reload error = %v", ev.err)
			}
			if cmp.Equal([]string{"Bob", "Carol"}, ev.res.Names) {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(path, []byte("Alice"), 0644); err != nil {
		t.Fatal(err)
	}

	events := make(chan watchEvent, 8)
	w, err := NewWatcher(path, DefaultOptions(), 10*time.Millisecond, func(res Result, err error) {
		events <- watchEvent{res, err}
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("Zed"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		t.Errorf("unexpected reload: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Alice"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, DefaultOptions(), 10*time.Millisecond, func(Result, error) {}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Alice"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, DefaultOptions(), 10*time.Millisecond, func(Result, error) {}, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("event loop did not exit after cancel")
	}
	w.Stop()
}
