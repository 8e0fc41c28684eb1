package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// overlayBackground is the translucent backing behind overlay text, dark
// enough to keep the text readable over bright images.
var overlayBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 120}

// OverlayLabel is a custom widget that draws text over a translucent rounded
// rectangle. It is used for the filename/position line and the clock.
type OverlayLabel struct {
	widget.BaseWidget
	text      string
	textColor color.Color
	textSize  float32
	padding   float32
}

// NewOverlayLabel creates a new overlay label
func NewOverlayLabel(textColor color.Color, textSize, padding float32) *OverlayLabel {
	ol := &OverlayLabel{
		textColor: textColor,
		textSize:  textSize,
		padding:   padding,
	}
	ol.ExtendBaseWidget(ol)
	return ol
}

// CreateRenderer implements fyne.Widget
func (ol *OverlayLabel) CreateRenderer() fyne.WidgetRenderer {
	textObj := canvas.NewText(ol.text, ol.textColor)
	textObj.TextSize = ol.textSize
	textObj.TextStyle = fyne.TextStyle{Bold: true}

	bgRect := canvas.NewRectangle(overlayBackground)
	bgRect.CornerRadius = 4

	return &overlayLabelRenderer{
		label:   ol,
		bgRect:  bgRect,
		textObj: textObj,
	}
}

// SetText updates the label text
func (ol *OverlayLabel) SetText(text string) {
	if ol.text == text {
		return
	}
	ol.text = text
	ol.Refresh()
}

// Text returns the current label text
func (ol *OverlayLabel) Text() string {
	return ol.text
}

// SetTextSize updates the font size
func (ol *OverlayLabel) SetTextSize(size float32) {
	ol.textSize = size
	ol.Refresh()
}

// SetTextColor updates the text color
func (ol *OverlayLabel) SetTextColor(c color.Color) {
	ol.textColor = c
	ol.Refresh()
}

// overlayLabelRenderer implements fyne.WidgetRenderer
type overlayLabelRenderer struct {
	label   *OverlayLabel
	bgRect  *canvas.Rectangle
	textObj *canvas.Text
}

func (r *overlayLabelRenderer) MinSize() fyne.Size {
	textSize := fyne.MeasureText(r.label.text, r.label.textSize, r.textObj.TextStyle)
	pad := 2 * r.label.padding
	return fyne.NewSize(textSize.Width+pad, textSize.Height+pad)
}

func (r *overlayLabelRenderer) Layout(size fyne.Size) {
	r.bgRect.Resize(size)
	r.bgRect.Move(fyne.NewPos(0, 0))

	pad := r.label.padding
	r.textObj.Resize(fyne.NewSize(size.Width-2*pad, size.Height-2*pad))
	r.textObj.Move(fyne.NewPos(pad, pad))
}

func (r *overlayLabelRenderer) Refresh() {
	r.textObj.Text = r.label.text
	r.textObj.Color = r.label.textColor
	r.textObj.TextSize = r.label.textSize
	r.textObj.Refresh()
	r.bgRect.Refresh()
}

func (r *overlayLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bgRect, r.textObj}
}

func (r *overlayLabelRenderer) Destroy() {
	// Nothing to destroy
}
