package ui

import "image/color"

// Align selects how FillText positions text relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is a drawing target addressed in field pixels (500 x 700, origin
// top left). Text y is the baseline.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	// StrokeLine draws a line; dash > 0 alternates dash-long strokes and gaps.
	StrokeLine(x0, y0, x1, y1, dash float64, c color.Color)
	FillArc(cx, cy, r float64, c color.Color)
	FillText(x, y float64, text string, align Align, c color.Color)
	// SetHidden hides the play field. A hidden surface shows a bare page and
	// anything drawn on it afterwards.
	SetHidden(hidden bool)
}

// Palette
var (
	BackgroundEdge   = color.RGBA{0x00, 0x04, 0x28, 0xff}
	BackgroundCenter = color.RGBA{0x00, 0x4e, 0x92, 0xff}
	PaddleColor      = color.RGBA{0x00, 0xff, 0xff, 0xff}
	PaddleGlow       = color.NRGBA{0x00, 0xff, 0xff, 0x40}
	BallColor        = color.RGBA{0xff, 0x00, 0xff, 0xff}
	BallGlow         = color.NRGBA{0xff, 0x00, 0xff, 0x50}
	CenterLineColor  = color.NRGBA{0xff, 0xff, 0xff, 0x88}
	TextColor        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	PageColor        = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ButtonColor      = color.RGBA{0xff, 0x00, 0xff, 0xff}
)
