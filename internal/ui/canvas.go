package ui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/neonpong/internal/game"
)

const (
	HalfBlock  = '\u2580' // ▀
	statusRows = 1
)

type textRun struct {
	col, row int
	text     []rune
	fg       tcell.Color
}

// Canvas is a Surface over terminal cells. Each cell carries two vertical
// sub-pixels drawn with an upper half block, so sub-pixels are square and
// the field keeps its aspect ratio, letterboxed into the screen above the
// status bar.
type Canvas struct {
	screen *Screen

	cols, rows int     // cells available to the field
	scale      float64 // sub-pixels per field pixel
	originX    int     // field left edge in sub-pixels
	originY    int     // field top edge in sub-pixels
	fieldW     int
	fieldH     int

	pixels []tcell.Color // cols x rows*2
	texts  []textRun
	hidden bool
}

func NewCanvas(screen *Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.Resize()
	return c
}

// Resize recomputes the layout from the current screen size.
func (c *Canvas) Resize() {
	w, h := c.screen.Size()
	if w < 1 {
		w = 1
	}
	rows := h - statusRows
	if rows < 1 {
		rows = 1
	}
	subRows := rows * 2

	c.cols, c.rows = w, rows
	c.scale = math.Min(float64(w)/game.Width, float64(subRows)/game.Height)
	c.fieldW = int(game.Width * c.scale)
	c.fieldH = int(game.Height * c.scale)
	c.originX = (w - c.fieldW) / 2
	c.originY = (subRows - c.fieldH) / 2
	c.pixels = make([]tcell.Color, w*subRows)
	c.clear()
}

// Begin starts a new frame.
func (c *Canvas) Begin() {
	c.clear()
	c.texts = c.texts[:0]
}

func (c *Canvas) clear() {
	page := toTcell(mustColorful(PageColor))
	for i := range c.pixels {
		c.pixels[i] = page
	}
}

// Flush writes the frame to the screen. It does not call Show.
func (c *Canvas) Flush() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(row*2)*c.cols+col]
			bottom := c.pixels[(row*2+1)*c.cols+col]
			c.screen.SetCell(col, row, tcell.StyleDefault.Foreground(top).Background(bottom), HalfBlock)
		}
	}

	for _, t := range c.texts {
		if t.row < 0 || t.row >= c.rows {
			continue
		}
		for i, r := range t.text {
			col := t.col + i
			if col < 0 || col >= c.cols {
				continue
			}
			bg := c.pixels[(t.row*2)*c.cols+col]
			c.screen.SetCell(col, t.row, tcell.StyleDefault.Foreground(t.fg).Background(bg).Bold(true), r)
		}
	}
}

func (c *Canvas) SetHidden(hidden bool) {
	c.hidden = hidden
	if hidden {
		c.clear()
		c.texts = c.texts[:0]
	}
}

func (c *Canvas) Hidden() bool {
	return c.hidden
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	x0, y0 := c.subX(x), c.subY(y)
	x1, y1 := c.subX(x+w), c.subY(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			c.blend(sx, sy, col)
		}
	}
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, dash float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	steps := 2*int(math.Max(math.Abs(dx), math.Abs(dy))*c.scale) + 1

	last := -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if dash > 0 && int(t*length/dash)%2 == 1 {
			continue
		}
		sx, sy := c.subX(x0+dx*t), c.subY(y0+dy*t)
		if idx := sy*c.cols + sx; idx != last {
			c.blend(sx, sy, col)
			last = idx
		}
	}
}

func (c *Canvas) FillArc(cx, cy, r float64, col color.Color) {
	drawn := false
	for sy := c.subY(cy - r); sy <= c.subY(cy+r); sy++ {
		for sx := c.subX(cx - r); sx <= c.subX(cx+r); sx++ {
			fx := (float64(sx-c.originX) + 0.5) / c.scale
			fy := (float64(sy-c.originY) + 0.5) / c.scale
			if (fx-cx)*(fx-cx)+(fy-cy)*(fy-cy) <= r*r {
				c.blend(sx, sy, col)
				drawn = true
			}
		}
	}
	// Never let the ball vanish on a tiny terminal
	if !drawn {
		c.blend(c.subX(cx), c.subY(cy), col)
	}
}

func (c *Canvas) FillText(x, y float64, text string, align Align, col color.Color) {
	runes := []rune(text)
	start := c.subX(x)
	if align == AlignCenter {
		start -= len(runes) / 2
	}
	// y is a baseline; place the glyph row just above it
	row := c.subY(y-1) / 2
	c.texts = append(c.texts, textRun{col: start, row: row, text: runes, fg: toTcell(mustColorful(col))})
}

// HostWidth is the screen width expressed in field pixels.
func (c *Canvas) HostWidth() float64 {
	return float64(c.cols) / c.scale
}

// HostX converts a cell column to an absolute host coordinate in field
// pixels, measured from the left edge of the screen.
func (c *Canvas) HostX(cellX int) float64 {
	return (float64(cellX) + 0.5) / c.scale
}

// FieldPoint converts a cell to field coordinates.
func (c *Canvas) FieldPoint(cellX, cellY int) (float64, float64) {
	x := (float64(cellX-c.originX) + 0.5) / c.scale
	y := (float64(cellY*2-c.originY) + 1) / c.scale
	return x, y
}

// Pixel returns the sub-pixel colour at field coordinates.
func (c *Canvas) Pixel(x, y float64) tcell.Color {
	sx, sy := c.subX(x), c.subY(y)
	if !c.inField(sx, sy) {
		return tcell.ColorDefault
	}
	return c.pixels[sy*c.cols+sx]
}

func (c *Canvas) subX(x float64) int {
	return c.originX + int(math.Floor(x*c.scale))
}

func (c *Canvas) subY(y float64) int {
	return c.originY + int(math.Floor(y*c.scale))
}

func (c *Canvas) inField(sx, sy int) bool {
	return sx >= c.originX && sx < c.originX+c.fieldW &&
		sy >= c.originY && sy < c.originY+c.fieldH
}

// blend composites col over the sub-pixel, honouring alpha.
func (c *Canvas) blend(sx, sy int, col color.Color) {
	if !c.inField(sx, sy) {
		return
	}
	_, _, _, a := col.RGBA()
	if a == 0 {
		return
	}
	i := sy*c.cols + sx
	src := mustColorful(col)
	if a == 0xffff {
		c.pixels[i] = toTcell(src)
		return
	}
	r, g, b := c.pixels[i].RGB()
	dst := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	c.pixels[i] = toTcell(dst.BlendRgb(src, float64(a)/0xffff))
}

func mustColorful(col color.Color) colorful.Color {
	if cc, ok := col.(colorful.Color); ok {
		return cc
	}
	cc, _ := colorful.MakeColor(col)
	return cc
}

func toTcell(cc colorful.Color) tcell.Color {
	r, g, b := cc.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
