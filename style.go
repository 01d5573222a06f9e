package sketch

import "image/color"

// StrokeSize is an abstract stroke width category.
// The concrete pixel width is resolved via [StrokeSize.Width].
type StrokeSize string

// Stroke width categories.
const (
	SizeSmall  StrokeSize = "small"
	SizeMedium StrokeSize = "medium"
	SizeLarge  StrokeSize = "large"
)

// strokeWidths maps abstract stroke sizes to concrete pixel widths.
var strokeWidths = map[StrokeSize]float64{
	SizeSmall:  4,
	SizeMedium: 8,
	SizeLarge:  12,
}

// Width resolves the category to a numeric stroke width in pixels.
// Unknown categories resolve to the medium width.
func (s StrokeSize) Width() float64 {
	if w, ok := strokeWidths[s]; ok {
		return w
	}
	return strokeWidths[SizeMedium]
}

// ColorStyle is an abstract stroke color.
type ColorStyle string

// Stroke colors.
const (
	ColorBlack  ColorStyle = "black"
	ColorGray   ColorStyle = "gray"
	ColorRed    ColorStyle = "red"
	ColorOrange ColorStyle = "orange"
	ColorYellow ColorStyle = "yellow"
	ColorGreen  ColorStyle = "green"
	ColorBlue   ColorStyle = "blue"
	ColorViolet ColorStyle = "violet"
)

// strokeColors maps abstract colors to concrete RGBA values.
var strokeColors = map[ColorStyle]color.RGBA{
	ColorBlack:  {R: 0x1d, G: 0x1d, B: 0x1d, A: 0xff},
	ColorGray:   {R: 0x78, G: 0x78, B: 0x78, A: 0xff},
	ColorRed:    {R: 0xe0, G: 0x3e, B: 0x3e, A: 0xff},
	ColorOrange: {R: 0xe1, G: 0x6d, B: 0x29, A: 0xff},
	ColorYellow: {R: 0xd9, G: 0xa3, B: 0x14, A: 0xff},
	ColorGreen:  {R: 0x36, G: 0x9e, B: 0x4c, A: 0xff},
	ColorBlue:   {R: 0x1c, G: 0x6c, B: 0xd8, A: 0xff},
	ColorViolet: {R: 0x80, G: 0x4a, B: 0xe0, A: 0xff},
}

// RGBA resolves the abstract color to a concrete color value.
// Unknown colors resolve to black.
func (c ColorStyle) RGBA() color.RGBA {
	if rgba, ok := strokeColors[c]; ok {
		return rgba
	}
	return strokeColors[ColorBlack]
}

// DashStyle is the dash pattern category of a stroke.
type DashStyle string

// Dash pattern categories.
const (
	DashSolid  DashStyle = "solid"
	DashDashed DashStyle = "dashed"
	DashDotted DashStyle = "dotted"
)

// Array returns the dash/gap lengths for the pattern at the given stroke
// width. Solid strokes return nil (no dashing), matching the convention
// that a nil dash array means a solid line.
func (d DashStyle) Array(strokeWidth float64) []float64 {
	switch d {
	case DashDashed:
		return []float64{strokeWidth * 2, strokeWidth * 2}
	case DashDotted:
		return []float64{0.01, strokeWidth * 2}
	default:
		return nil
	}
}

// Style holds the resolved visual attributes of a shape.
type Style struct {
	Color    ColorStyle `json:"color"`
	Size     StrokeSize `json:"size"`
	Dash     DashStyle  `json:"dash"`
	IsFilled bool       `json:"isFilled"`
}

// DefaultStyle returns the style new shapes are created with.
func DefaultStyle() Style {
	return Style{
		Color:    ColorBlack,
		Size:     SizeMedium,
		Dash:     DashSolid,
		IsFilled: false,
	}
}

// StrokeWidth resolves the style's size category to a pixel width.
func (s Style) StrokeWidth() float64 {
	return s.Size.Width()
}

// PartialStyle is a partial update to a Style. Nil fields leave the
// corresponding attribute unchanged when merged.
type PartialStyle struct {
	Color    *ColorStyle
	Size     *StrokeSize
	Dash     *DashStyle
	IsFilled *bool
}

// Merge returns s with the non-nil fields of partial applied.
func (s Style) Merge(partial PartialStyle) Style {
	if partial.Color != nil {
		s.Color = *partial.Color
	}
	if partial.Size != nil {
		s.Size = *partial.Size
	}
	if partial.Dash != nil {
		s.Dash = *partial.Dash
	}
	if partial.IsFilled != nil {
		s.IsFilled = *partial.IsFilled
	}
	return s
}
