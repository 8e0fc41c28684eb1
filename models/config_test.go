package models

import "testing"

func TestDefaultConfigFullyPopulated(t *testing.T) {
	config := DefaultConfig()

	if config.Interval <= 0 {
		t.Errorf("default interval must be positive, got %d", config.Interval)
	}
	if config.RescanInterval <= 0 {
		t.Errorf("default rescan interval must be positive, got %d", config.RescanInterval)
	}
	if config.FontSize <= 0 {
		t.Errorf("default font size must be positive, got %d", config.FontSize)
	}
	if len(config.Extensions) == 0 {
		t.Error("default extension list must not be empty")
	}
	if config.ScaleMode != ScaleFit {
		t.Errorf("expected default scale mode %q, got %q", ScaleFit, config.ScaleMode)
	}
	if config.InfoColor == "" || config.BackgroundColor == "" {
		t.Error("default colors must be set")
	}
}

func TestNormalizeFillsInvalidValues(t *testing.T) {
	config := &Config{
		Interval:       -3,
		RescanInterval: 0,
		FontSize:       0,
		ScaleMode:      "zoom",
	}
	config.Normalize()

	defaults := DefaultConfig()
	if config.Interval != defaults.Interval {
		t.Errorf("expected interval %d, got %d", defaults.Interval, config.Interval)
	}
	if config.RescanInterval != defaults.RescanInterval {
		t.Errorf("expected rescan interval %d, got %d", defaults.RescanInterval, config.RescanInterval)
	}
	if config.FontSize != defaults.FontSize {
		t.Errorf("expected font size %d, got %d", defaults.FontSize, config.FontSize)
	}
	if config.ScaleMode != ScaleFit {
		t.Errorf("unknown scale mode should normalize to %q, got %q", ScaleFit, config.ScaleMode)
	}
	if len(config.Extensions) == 0 {
		t.Error("empty extension list should normalize to defaults")
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	config := DefaultConfig()
	config.Interval = 42
	config.ScaleMode = "FILL" // case-insensitive

	config.Normalize()

	if config.Interval != 42 {
		t.Errorf("valid interval changed: %d", config.Interval)
	}
	if config.ScaleMode != ScaleFill {
		t.Errorf("expected %q, got %q", ScaleFill, config.ScaleMode)
	}
}

func TestNextScaleModeCycles(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{ScaleFit, ScaleFill},
		{ScaleFill, ScaleStretch},
		{ScaleStretch, ScaleFit},
		{"bogus", ScaleFit},
	}

	for _, c := range cases {
		if got := NextScaleMode(c.in); got != c.want {
			t.Errorf("NextScaleMode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
