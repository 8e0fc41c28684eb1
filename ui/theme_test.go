package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
)

func TestLoadFontResourceEmptyPath(t *testing.T) {
	if res := loadFontResource(""); res != nil {
		t.Errorf("expected nil resource for empty path, got %v", res)
	}
}

func TestLoadFontResourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.ttf")
	if res := loadFontResource(path); res != nil {
		t.Errorf("expected nil resource for missing file, got %v", res)
	}
}

func TestLoadFontResourceValidFile(t *testing.T) {
	data := []byte("fake font bytes")
	path := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := loadFontResource(path)
	if res == nil {
		t.Fatal("expected a resource for an existing file")
	}
	if res.Name() != "custom.ttf" {
		t.Errorf("resource name = %q, want %q", res.Name(), "custom.ttf")
	}
	if !bytes.Equal(res.Content(), data) {
		t.Error("resource content does not match file content")
	}
}

func TestThemeFallsBackWhenFontMissing(t *testing.T) {
	th := newSlideshowTheme(filepath.Join(t.TempDir(), "nope.ttf"))
	if _, ok := th.(*slideshowTheme); ok {
		t.Error("expected the default theme when the font cannot be loaded")
	}
}

func TestThemeServesCustomFont(t *testing.T) {
	data := []byte("fake font bytes")
	path := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	th := newSlideshowTheme(path)
	st, ok := th.(*slideshowTheme)
	if !ok {
		t.Fatal("expected a custom theme for a loadable font")
	}

	// Every text style resolves to the one custom face
	for _, style := range []fyne.TextStyle{{}, {Bold: true}, {Italic: true}, {Monospace: true}} {
		res := st.Font(style)
		if res == nil || !bytes.Equal(res.Content(), data) {
			t.Errorf("Font(%+v) did not return the custom font", style)
		}
	}
}
