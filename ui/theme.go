package ui

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// slideshowTheme overrides the toolkit font with one loaded from the
// configured font_path, leaving every other theme aspect at the default.
type slideshowTheme struct {
	fyne.Theme
	font fyne.Resource
}

// newSlideshowTheme wraps the default theme with the font file at path.
// A missing or unreadable font falls back to the default theme, like every
// other bad config value.
func newSlideshowTheme(path string) fyne.Theme {
	font := loadFontResource(path)
	if font == nil {
		return theme.DefaultTheme()
	}
	log.Printf("loaded font %s", path)
	return &slideshowTheme{
		Theme: theme.DefaultTheme(),
		font:  font,
	}
}

// Font implements fyne.Theme
func (t *slideshowTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.font
}

// loadFontResource reads a TTF/OTF file into a static resource
func loadFontResource(path string) fyne.Resource {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("cannot load font %s, using default font: %v", path, err)
		return nil
	}

	return fyne.NewStaticResource(filepath.Base(path), data)
}
