package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/neonpong/internal/game"
)

// Renderer handles rendering all terminal screens
type Renderer struct {
	screen *Screen
	canvas *Canvas
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, canvas: NewCanvas(screen)}
}

// Canvas returns the surface the field is drawn on
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Resize adapts the layout after the terminal changed size
func (r *Renderer) Resize() {
	r.screen.Sync()
	r.canvas.Resize()
}

// RenderGame displays the play field
func (r *Renderer) RenderGame(snap game.Snapshot) {
	r.canvas.Begin()
	DrawField(r.canvas, snap)
	r.canvas.Flush()

	status := fmt.Sprintf(" First to %d wins | mouse or ←/→ to move | q to quit", game.WinningScore)
	r.renderStatus(status)

	r.screen.Show()
}

// RenderGameOver displays the winner banner
func (r *Renderer) RenderGameOver(snap game.Snapshot) {
	r.canvas.Begin()
	DrawGameOver(r.canvas, snap)
	r.canvas.Flush()

	r.renderStatus(" ENTER or click Play Again | q to quit")

	r.screen.Show()
}

// renderStatus draws the status bar on the bottom row
func (r *Renderer) renderStatus(text string) {
	screenW, screenH := r.screen.Size()
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(0, statusY, text, statusStyle)
}
