package monitor

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestPeriodicRescanFires(t *testing.T) {
	fired := make(chan struct{}, 10)

	m := NewFolderMonitor(t.TempDir(), false, 50*time.Millisecond, func() {
		fired <- struct{}{}
	})
	m.Start()
	defer m.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for periodic rescan")
	}
}

func TestStopPreventsFurtherCallbacks(t *testing.T) {
	var calls int32

	m := NewFolderMonitor(t.TempDir(), false, 20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})
	m.Start()

	time.Sleep(100 * time.Millisecond)
	m.Stop()

	// Let any in-flight callback finish before sampling the count
	time.Sleep(50 * time.Millisecond)
	settled := atomic.LoadInt32(&calls)
	if settled == 0 {
		t.Fatal("expected at least one callback before Stop")
	}

	time.Sleep(150 * time.Millisecond)
	if after := atomic.LoadInt32(&calls); after != settled {
		t.Errorf("callbacks continued after Stop: %d -> %d", settled, after)
	}
}

func TestFilesystemChangeTriggersRescan(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the settling delay")
	}

	dir := t.TempDir()
	fired := make(chan struct{}, 10)

	// Long periodic interval so only the watcher can fire
	m := NewFolderMonitor(dir, false, time.Hour, func() {
		fired <- struct{}{}
	})
	m.Start()
	defer m.Stop()

	// Give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "new.jpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(settlingDelay + 3*time.Second):
		t.Fatal("timeout waiting for filesystem-triggered rescan")
	}
}

func TestRecursiveWatchCoversSubfolders(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the settling delay")
	}

	dir := t.TempDir()
	sub := filepath.Join(dir, "vacation")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	fired := make(chan struct{}, 10)
	m := NewFolderMonitor(dir, true, time.Hour, func() {
		fired <- struct{}{}
	})
	m.Start()
	defer m.Stop()

	time.Sleep(100 * time.Millisecond)

	// A write inside the subfolder, not the root, must still trigger
	if err := os.WriteFile(filepath.Join(sub, "beach.jpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(settlingDelay + 3*time.Second):
		t.Fatal("timeout waiting for subfolder-triggered rescan")
	}
}

func TestMissingFolderDoesNotCrash(t *testing.T) {
	m := NewFolderMonitor(filepath.Join(t.TempDir(), "nope"), true, time.Hour, func() {})
	m.Start()
	m.Stop()
	// Stop twice is safe
	m.Stop()
}
