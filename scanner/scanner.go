package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Scanner builds the image set for a configured folder
type Scanner struct{}

// NewScanner creates a new scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Result carries the outcome of one scan generation. The ID lets callers
// discard results from a scan that has since been superseded.
type Result struct {
	ID     string
	Images []string
}

// Scan walks the folder and returns the matching image paths in a stable,
// sorted order. Extension matching is case-insensitive. A missing or
// unreadable folder yields an empty set, not an error.
func (s *Scanner) Scan(folder string, extensions []string, recursive bool) []string {
	if folder == "" {
		return nil
	}

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil
	}

	extmap := make(map[string]bool)
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extmap[ext] = true
	}

	var images []string
	if recursive {
		err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable subfolders
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if extmap[strings.ToLower(filepath.Ext(path))] {
				images = append(images, path)
			}
			return nil
		})
		if err != nil {
			log.Printf("scan of %s aborted: %v", folder, err)
		}
	} else {
		entries, err := os.ReadDir(folder)
		if err != nil {
			return nil
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if extmap[strings.ToLower(filepath.Ext(entry.Name()))] {
				images = append(images, filepath.Join(folder, entry.Name()))
			}
		}
	}

	sort.Strings(images)
	return images
}

// ScanAsync runs Scan on its own goroutine and delivers the outcome to done,
// tagged with the generation ID it also returns.
func (s *Scanner) ScanAsync(folder string, extensions []string, recursive bool, done func(Result)) string {
	id := uuid.New().String()
	go func() {
		done(Result{
			ID:     id,
			Images: s.Scan(folder, extensions, recursive),
		})
	}()
	return id
}
