package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/neonpong/internal/game"
)

const (
	gradientBand  = 4  // Height of each background band in field pixels
	glowSpread    = 3  // Paddle halo beyond its edges
	ballGlow      = 5  // Ball halo beyond its radius
	centerDash    = 10 // Dash length of the centre line
	playerPaddleY = game.Height - 20
	computerY     = 10
)

// Rect is an axis-aligned rectangle in field pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PlayAgainButton is where the restart button sits on the game over page.
var PlayAgainButton = Rect{X: 175, Y: 370, W: 150, H: 44}

var (
	gradientEdge, _   = colorful.MakeColor(BackgroundEdge)
	gradientCenter, _ = colorful.MakeColor(BackgroundCenter)
)

// GradientAt returns the background colour at relative height t in [0, 1]:
// dark at both edges, brightest at the middle.
func GradientAt(t float64) colorful.Color {
	t = math.Max(0, math.Min(1, t))
	if t <= 0.5 {
		return gradientEdge.BlendRgb(gradientCenter, t*2).Clamped()
	}
	return gradientCenter.BlendRgb(gradientEdge, (t-0.5)*2).Clamped()
}

// DrawField paints the play field for snap. It never mutates game state.
func DrawField(s Surface, snap game.Snapshot) {
	s.SetHidden(false)

	// Background
	for y := 0.0; y < snap.Height; y += gradientBand {
		s.FillRect(0, y, snap.Width, gradientBand, GradientAt((y+gradientBand/2)/snap.Height))
	}

	// Paddles
	drawPaddle(s, snap.PlayerX, playerPaddleY, snap.PaddleWidth, snap.PaddleHeight)
	drawPaddle(s, snap.ComputerX, computerY, snap.PaddleWidth, snap.PaddleHeight)

	// Centre line
	s.StrokeLine(0, snap.Height/2, snap.Width, snap.Height/2, centerDash, CenterLineColor)

	// Ball
	s.FillArc(snap.BallX, snap.BallY, snap.BallRadius+ballGlow, BallGlow)
	s.FillArc(snap.BallX, snap.BallY, snap.BallRadius, BallColor)

	// Scores
	s.FillText(20, snap.Height/2+50, strconv.Itoa(snap.PlayerScore), AlignLeft, TextColor)
	s.FillText(20, snap.Height/2-30, strconv.Itoa(snap.ComputerScore), AlignLeft, TextColor)
}

func drawPaddle(s Surface, x, y, w, h float64) {
	s.FillRect(x-glowSpread, y-glowSpread, w+2*glowSpread, h+2*glowSpread, PaddleGlow)
	s.FillRect(x, y, w, h, PaddleColor)
}

// DrawGameOver hides the field and shows the winner with a Play Again button.
func DrawGameOver(s Surface, snap game.Snapshot) {
	s.SetHidden(true)

	centerX := snap.Width / 2
	s.FillText(centerX, 300, fmt.Sprintf("%s Wins!", snap.Winner), AlignCenter, TextColor)
	s.FillText(centerX, 340, fmt.Sprintf("%d - %d", snap.PlayerScore, snap.ComputerScore), AlignCenter, TextColor)

	b := PlayAgainButton
	s.FillRect(b.X, b.Y, b.W, b.H, ButtonColor)
	s.FillText(centerX, b.Y+b.H/2+6, "Play Again", AlignCenter, TextColor)
}
