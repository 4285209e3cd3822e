package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/ui"
)

const lineWidth = 2

// Canvas is a ui.Surface over an ebiten image laid out at field size.
type Canvas struct {
	dst    *ebiten.Image
	faces  *Faces
	hidden bool
}

func NewCanvas(faces *Faces) *Canvas {
	return &Canvas{faces: faces}
}

// Target sets the image the next frame is drawn on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) SetHidden(hidden bool) {
	c.hidden = hidden
	if hidden {
		c.dst.Fill(ui.PageColor)
	}
}

func (c *Canvas) Hidden() bool {
	return c.hidden
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, dash float64, col color.Color) {
	if dash <= 0 {
		vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, col, true)
		return
	}
	for _, seg := range dashes(x0, y0, x1, y1, dash) {
		vector.StrokeLine(c.dst, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), lineWidth, col, true)
	}
}

func (c *Canvas) FillArc(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c *Canvas) FillText(x, y float64, s string, align ui.Align, col color.Color) {
	face := c.faces.Score
	if align == ui.AlignCenter {
		face = c.faces.Banner
	}
	x = alignX(face, s, x, align)
	text.Draw(c.dst, s, face, int(math.Round(x)), int(math.Round(y)), col)
}

// alignX returns where a run of text starts so that it honours align at x.
func alignX(face font.Face, s string, x float64, align ui.Align) float64 {
	if align != ui.AlignCenter {
		return x
	}
	w := font.MeasureString(face, s)
	return x - float64(w)/64/2
}

// dashes splits a line into dash-long segments separated by equal gaps.
func dashes(x0, y0, x1, y1, dash float64) [][4]float64 {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length

	var segs [][4]float64
	for d := 0.0; d < length; d += 2 * dash {
		end := math.Min(d+dash, length)
		segs = append(segs, [4]float64{x0 + ux*d, y0 + uy*d, x0 + ux*end, y0 + uy*end})
	}
	return segs
}

// Layout is the logical screen size; ebiten scales it into the window.
func Layout() (int, int) {
	return game.Width, game.Height
}
