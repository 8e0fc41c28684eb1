package monitor

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settlingDelay is how long the folder has to stay quiet after a filesystem
// event before a rescan is requested. Copying a batch of images into the
// folder fires many events; one rescan at the end is enough.
const settlingDelay = 2 * time.Second

// FolderMonitor requests rescans of the image folder. It combines a periodic
// timer with a real-time filesystem watcher so new images show up without
// waiting a full rescan interval.
type FolderMonitor struct {
	folder    string
	recursive bool
	interval  time.Duration
	onChange  func()

	mu       sync.Mutex
	debounce *time.Timer
	stop     chan struct{}
	stopOnce sync.Once
}

// NewFolderMonitor creates a monitor for the given folder. onChange is called
// on a background goroutine every rescan interval and, debounced, after
// filesystem changes. With recursive set, existing subfolders and ones
// created while watching are covered too.
func NewFolderMonitor(folder string, recursive bool, interval time.Duration, onChange func()) *FolderMonitor {
	return &FolderMonitor{
		folder:    folder,
		recursive: recursive,
		interval:  interval,
		onChange:  onChange,
		stop:      make(chan struct{}),
	}
}

// Start launches the periodic ticker and the filesystem watcher
func (m *FolderMonitor) Start() {
	go m.runTicker()
	go m.runWatcher()
}

// Stop shuts the monitor down. Pending debounce timers are cancelled.
func (m *FolderMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})

	m.mu.Lock()
	if m.debounce != nil {
		m.debounce.Stop()
		m.debounce = nil
	}
	m.mu.Unlock()
}

func (m *FolderMonitor) runTicker() {
	if m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.onChange()
		case <-m.stop:
			return
		}
	}
}

func (m *FolderMonitor) runWatcher() {
	if m.folder == "" {
		return
	}
	if _, err := os.Stat(m.folder); err != nil {
		// Nothing to watch yet, the periodic rescan will pick the folder
		// up once it appears.
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("folder watcher unavailable, relying on periodic rescan: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(m.folder); err != nil {
		log.Printf("cannot watch %s: %v", m.folder, err)
		return
	}
	if m.recursive {
		m.watchSubfolders(watcher)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// fsnotify watches are not recursive; newly created
			// subfolders have to be added as they appear
			if m.recursive && event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("cannot watch %s: %v", event.Name, err)
					}
				}
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				m.scheduleChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("folder watcher error: %v", err)
		case <-m.stop:
			return
		}
	}
}

// watchSubfolders adds every existing subfolder to the watch
func (m *FolderMonitor) watchSubfolders(watcher *fsnotify.Watcher) {
	filepath.WalkDir(m.folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && path != m.folder {
			if err := watcher.Add(path); err != nil {
				log.Printf("cannot watch %s: %v", path, err)
			}
		}
		return nil
	})
}

// scheduleChange resets the settling timer. Only the last event of a burst
// triggers onChange.
func (m *FolderMonitor) scheduleChange() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.stop:
		return
	default:
	}

	if m.debounce != nil {
		m.debounce.Stop()
	}
	m.debounce = time.AfterFunc(settlingDelay, m.onChange)
}
