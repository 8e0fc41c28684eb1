package models

import "strings"

// Scale modes control how an image is fitted to the display surface
const (
	ScaleFit     = "fit"     // keep aspect ratio, fit inside the screen
	ScaleFill    = "fill"    // keep aspect ratio, crop to fill the screen
	ScaleStretch = "stretch" // ignore aspect ratio
)

// Config represents the persisted slideshow configuration
type Config struct {
	Folder          string   `json:"folder"`           // image folder to scan
	Recursive       bool     `json:"recursive"`        // include subfolders
	Interval        int      `json:"interval"`         // seconds between slides
	Random          bool     `json:"random"`           // shuffled playback order
	Fullscreen      bool     `json:"fullscreen"`       // start in fullscreen
	ScaleMode       string   `json:"scale_mode"`       // fit, fill or stretch
	Extensions      []string `json:"extensions"`       // file extensions to accept
	RescanInterval  int      `json:"rescan_interval"`  // seconds between folder rescans
	ShowInfo        bool     `json:"show_info"`        // filename/position overlay
	ShowClock       bool     `json:"show_clock"`       // clock overlay
	FontPath        string   `json:"font_path"`        // custom TTF/OTF file, empty for the default font
	FontSize        int      `json:"font_size"`        // overlay font size in points
	InfoColor       string   `json:"info_color"`       // overlay text color, #RRGGBB
	BackgroundColor string   `json:"background_color"` // screen background color, #RRGGBB
}

// DefaultConfig returns a fully populated default configuration
func DefaultConfig() *Config {
	return &Config{
		Folder:          "",
		Recursive:       true,
		Interval:        5,
		Random:          true,
		Fullscreen:      true,
		ScaleMode:       ScaleFit,
		Extensions:      []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff", ".webp"},
		RescanInterval:  300,
		ShowInfo:        true,
		ShowClock:       true,
		FontPath:        "",
		FontSize:        20,
		InfoColor:       "#FFFFFF",
		BackgroundColor: "#000000",
	}
}

// Normalize replaces out-of-range or missing values with their defaults so
// the rest of the program never has to second-guess the configuration.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	if c.Interval <= 0 {
		c.Interval = defaults.Interval
	}
	if c.RescanInterval <= 0 {
		c.RescanInterval = defaults.RescanInterval
	}
	if c.FontSize <= 0 {
		c.FontSize = defaults.FontSize
	}
	if len(c.Extensions) == 0 {
		c.Extensions = defaults.Extensions
	}
	if c.InfoColor == "" {
		c.InfoColor = defaults.InfoColor
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = defaults.BackgroundColor
	}

	switch strings.ToLower(c.ScaleMode) {
	case ScaleFit, ScaleFill, ScaleStretch:
		c.ScaleMode = strings.ToLower(c.ScaleMode)
	default:
		c.ScaleMode = defaults.ScaleMode
	}
}

// NextScaleMode returns the mode following the given one in the
// fit -> fill -> stretch cycle. Unknown modes restart the cycle at fit.
func NextScaleMode(mode string) string {
	switch mode {
	case ScaleFit:
		return ScaleFill
	case ScaleFill:
		return ScaleStretch
	default:
		return ScaleFit
	}
}
