package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	// Formats the configured extension list can point at. GIFs show their
	// first frame.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"slideshow/models"
)

const (
	overlayMargin  float32 = 20
	infoPadding    float32 = 6
	clockPadding   float32 = 8
	clockMinSize   float32 = 24
	clockSizeRatio float32 = 0.025
)

// Viewer is the presentation surface: it renders the current image scaled
// per the configured mode over the background color and overlays the info
// line and the clock.
type Viewer struct {
	widget.BaseWidget

	mu           sync.Mutex
	src          image.Image
	scaleMode    string
	infoText     string
	clockText    string
	showInfo     bool
	showClock    bool
	fontSize     float32
	infoColor    color.Color
	background   color.Color
	cursorHidden bool
}

// NewViewer creates a viewer with the given overlay and background settings
func NewViewer(scaleMode string, fontSize float32, infoColor, background color.Color) *Viewer {
	v := &Viewer{
		scaleMode:    scaleMode,
		showInfo:     true,
		showClock:    true,
		fontSize:     fontSize,
		infoColor:    infoColor,
		background:   background,
		cursorHidden: true,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetImage decodes the file at path and displays it. The caller is expected
// to skip to the next image when decoding fails.
func (v *Viewer) SetImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	v.mu.Lock()
	v.src = img
	v.mu.Unlock()
	v.Refresh()
	return nil
}

// ClearImage removes the current image, leaving only the background and
// overlays visible.
func (v *Viewer) ClearImage() {
	v.mu.Lock()
	v.src = nil
	v.mu.Unlock()
	v.Refresh()
}

// SetScaleMode switches between fit, fill and stretch
func (v *Viewer) SetScaleMode(mode string) {
	v.mu.Lock()
	v.scaleMode = mode
	v.mu.Unlock()
	v.Refresh()
}

// ScaleMode returns the active scale mode
func (v *Viewer) ScaleMode() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scaleMode
}

// SetInfo updates the bottom-left info line
func (v *Viewer) SetInfo(text string) {
	v.mu.Lock()
	v.infoText = text
	v.mu.Unlock()
	v.Refresh()
}

// SetClock updates the top-right clock text
func (v *Viewer) SetClock(text string) {
	v.mu.Lock()
	if v.clockText == text {
		v.mu.Unlock()
		return
	}
	v.clockText = text
	v.mu.Unlock()
	v.Refresh()
}

// SetShowInfo toggles the info overlay
func (v *Viewer) SetShowInfo(show bool) {
	v.mu.Lock()
	v.showInfo = show
	v.mu.Unlock()
	v.Refresh()
}

// SetShowClock toggles the clock overlay
func (v *Viewer) SetShowClock(show bool) {
	v.mu.Lock()
	v.showClock = show
	v.mu.Unlock()
	v.Refresh()
}

// SetCursorHidden controls whether the pointer is visible over the viewer
func (v *Viewer) SetCursorHidden(hidden bool) {
	v.mu.Lock()
	v.cursorHidden = hidden
	v.mu.Unlock()
}

// CursorHidden reports whether the pointer is hidden
func (v *Viewer) CursorHidden() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursorHidden
}

// Cursor implements desktop.Cursorable
func (v *Viewer) Cursor() desktop.Cursor {
	if v.CursorHidden() {
		return desktop.HiddenCursor
	}
	return desktop.DefaultCursor
}

// CreateRenderer implements fyne.Widget
func (v *Viewer) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(v.background)

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.Hide()

	info := NewOverlayLabel(v.infoColor, v.fontSize, infoPadding)
	clock := NewOverlayLabel(v.infoColor, clockMinSize, clockPadding)

	return &viewerRenderer{
		viewer: v,
		bg:     bg,
		img:    img,
		info:   info,
		clock:  clock,
	}
}

// viewerRenderer implements fyne.WidgetRenderer
type viewerRenderer struct {
	viewer *Viewer
	bg     *canvas.Rectangle
	img    *canvas.Image
	info   *OverlayLabel
	clock  *OverlayLabel
}

func (r *viewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *viewerRenderer) Layout(size fyne.Size) {
	r.viewer.mu.Lock()
	src := r.viewer.src
	mode := r.viewer.scaleMode
	r.viewer.mu.Unlock()

	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	switch mode {
	case models.ScaleFill:
		// Crop the source to the display aspect ratio, then let the
		// toolkit stretch the remainder over the full surface.
		r.img.Image = cropToAspect(src, size.Width, size.Height)
		r.img.FillMode = canvas.ImageFillStretch
	case models.ScaleStretch:
		r.img.Image = src
		r.img.FillMode = canvas.ImageFillStretch
	default:
		r.img.Image = src
		r.img.FillMode = canvas.ImageFillContain
	}
	r.img.Resize(size)
	r.img.Move(fyne.NewPos(0, 0))

	infoSize := r.info.MinSize()
	r.info.Resize(infoSize)
	r.info.Move(fyne.NewPos(overlayMargin, size.Height-overlayMargin-infoSize.Height))

	// The clock grows with the window so it stays readable from a distance
	clockTextSize := size.Width * clockSizeRatio
	if clockTextSize < clockMinSize {
		clockTextSize = clockMinSize
	}
	r.clock.SetTextSize(clockTextSize)
	clockSize := r.clock.MinSize()
	r.clock.Resize(clockSize)
	r.clock.Move(fyne.NewPos(size.Width-overlayMargin-clockSize.Width, overlayMargin))
}

func (r *viewerRenderer) Refresh() {
	r.viewer.mu.Lock()
	hasImage := r.viewer.src != nil
	infoText := r.viewer.infoText
	clockText := r.viewer.clockText
	showInfo := r.viewer.showInfo && infoText != ""
	showClock := r.viewer.showClock && clockText != ""
	infoColor := r.viewer.infoColor
	background := r.viewer.background
	fontSize := r.viewer.fontSize
	r.viewer.mu.Unlock()

	r.bg.FillColor = background

	r.info.SetTextColor(infoColor)
	r.info.SetTextSize(fontSize)
	r.info.SetText(infoText)
	r.clock.SetTextColor(infoColor)
	r.clock.SetText(clockText)

	if showInfo {
		r.info.Show()
	} else {
		r.info.Hide()
	}
	if showClock {
		r.clock.Show()
	} else {
		r.clock.Hide()
	}
	if hasImage {
		r.img.Show()
	} else {
		r.img.Hide()
	}

	r.Layout(r.viewer.Size())

	r.bg.Refresh()
	r.img.Refresh()
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.img, r.info, r.clock}
}

func (r *viewerRenderer) Destroy() {
	// Nothing to destroy
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cropToAspect returns a centered crop of img matching the w:h aspect ratio.
// Sources whose concrete type cannot produce sub-images are returned as-is.
func cropToAspect(img image.Image, w, h float32) image.Image {
	if img == nil || w <= 0 || h <= 0 {
		return img
	}
	si, ok := img.(subImager)
	if !ok {
		return img
	}

	bounds := img.Bounds()
	srcW := float32(bounds.Dx())
	srcH := float32(bounds.Dy())
	if srcW <= 0 || srcH <= 0 {
		return img
	}

	target := w / h
	source := srcW / srcH

	rect := bounds
	if source > target {
		// Source is wider than the display, trim the sides
		cropW := int(srcH * target)
		x0 := bounds.Min.X + (bounds.Dx()-cropW)/2
		rect = image.Rect(x0, bounds.Min.Y, x0+cropW, bounds.Max.Y)
	} else if source < target {
		// Source is taller than the display, trim top and bottom
		cropH := int(srcW / target)
		y0 := bounds.Min.Y + (bounds.Dy()-cropH)/2
		rect = image.Rect(bounds.Min.X, y0, bounds.Max.X, y0+cropH)
	}

	return si.SubImage(rect)
}

// parseHexColor parses #RGB, #RRGGBB and #RRGGBBAA color strings
func parseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xFF}

	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q", s)
	}

	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	pair := func(hi, lo byte) (uint8, bool) {
		h, ok1 := hexVal(hi)
		l, ok2 := hexVal(lo)
		return h<<4 | l, ok1 && ok2
	}

	var ok bool
	switch len(s) {
	case 4: // #RGB
		var r, g, b uint8
		r, ok = hexVal(s[1])
		if ok {
			g, ok = hexVal(s[2])
		}
		if ok {
			b, ok = hexVal(s[3])
		}
		c.R = r<<4 | r
		c.G = g<<4 | g
		c.B = b<<4 | b
	case 7: // #RRGGBB
		c.R, ok = pair(s[1], s[2])
		if ok {
			c.G, ok = pair(s[3], s[4])
		}
		if ok {
			c.B, ok = pair(s[5], s[6])
		}
	case 9: // #RRGGBBAA
		c.R, ok = pair(s[1], s[2])
		if ok {
			c.G, ok = pair(s[3], s[4])
		}
		if ok {
			c.B, ok = pair(s[5], s[6])
		}
		if ok {
			c.A, ok = pair(s[7], s[8])
		}
	}

	if !ok {
		return color.NRGBA{A: 0xFF}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// parseHexColorOr falls back to the given color when parsing fails
func parseHexColorOr(s string, fallback color.NRGBA) color.NRGBA {
	c, err := parseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
