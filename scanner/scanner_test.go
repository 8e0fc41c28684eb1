package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var testExtensions = []string{".jpg", ".png", ".gif"}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestScanFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.png", "c.txt", "d.doc", "e.gif")

	images := NewScanner().Scan(dir, testExtensions, false)
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d: %v", len(images), images)
	}
}

func TestScanExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "upper.JPG", "mixed.Png", "lower.gif")

	images := NewScanner().Scan(dir, testExtensions, false)
	if len(images) != 3 {
		t.Fatalf("expected 3 images regardless of case, got %d: %v", len(images), images)
	}

	// Extensions configured without leading dot or with stray spacing
	// still match
	images = NewScanner().Scan(dir, []string{"jpg", " PNG ", ".gif"}, false)
	if len(images) != 3 {
		t.Fatalf("expected 3 images with unnormalized extensions, got %d", len(images))
	}
}

func TestScanStableOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "c.jpg", "a.jpg", "b.jpg")

	scanner := NewScanner()
	first := scanner.Scan(dir, testExtensions, false)
	second := scanner.Scan(dir, testExtensions, false)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("scan order not stable:\n%v\n%v", first, second)
	}

	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpg"),
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("expected sorted order %v, got %v", want, first)
	}
}

func TestScanRecursion(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "top.jpg", filepath.Join("sub", "nested.jpg"), filepath.Join("sub", "deep", "bottom.png"))

	scanner := NewScanner()

	flat := scanner.Scan(dir, testExtensions, false)
	if len(flat) != 1 {
		t.Errorf("non-recursive scan should find 1 image, got %d: %v", len(flat), flat)
	}

	recursive := scanner.Scan(dir, testExtensions, true)
	if len(recursive) != 3 {
		t.Errorf("recursive scan should find 3 images, got %d: %v", len(recursive), recursive)
	}
}

func TestScanMissingFolder(t *testing.T) {
	images := NewScanner().Scan(filepath.Join(t.TempDir(), "does-not-exist"), testExtensions, true)
	if len(images) != 0 {
		t.Errorf("missing folder should yield an empty set, got %v", images)
	}

	images = NewScanner().Scan("", testExtensions, true)
	if len(images) != 0 {
		t.Errorf("empty folder path should yield an empty set, got %v", images)
	}
}

func TestScanAsyncDeliversTaggedResult(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg")

	results := make(chan Result, 1)
	id := NewScanner().ScanAsync(dir, testExtensions, false, func(r Result) {
		results <- r
	})

	select {
	case result := <-results:
		if result.ID != id {
			t.Errorf("expected result tagged %s, got %s", id, result.ID)
		}
		if len(result.Images) != 1 {
			t.Errorf("expected 1 image, got %v", result.Images)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for scan result")
	}
}
