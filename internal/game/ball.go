package game

import "math"

const (
	BallRadius       = 10
	RestartSpeedY    = -3.0 // Vertical speed after every reset
	DeflectionFactor = 0.3  // Horizontal speed per pixel of offset from paddle centre
)

type Ball struct {
	X, Y           float64
	Radius         float64
	SpeedX, SpeedY float64
	// Contact is set once the ball has struck the player paddle since the
	// last reset. Horizontal motion is frozen until then.
	Contact bool
}

func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y, Radius: BallRadius}
}

// Move advances the ball by one step.
// SpeedY is read negated: a negative SpeedY carries the ball down the field
// toward the player, a positive one up toward the computer.
func (b *Ball) Move(engaged bool) {
	b.Y += -b.SpeedY
	if engaged && b.Contact {
		b.X += b.SpeedX
	}
}

// BounceWalls reflects horizontal speed when the ball is past a side wall and
// still heading further out. Bounds are the raw field edges, not radius
// adjusted, so the ball overlaps the wall slightly before it turns.
func (b *Ball) BounceWalls(width float64) bool {
	if b.X < 0 && b.SpeedX < 0 || b.X > width && b.SpeedX > 0 {
		b.SpeedX = -b.SpeedX
		return true
	}
	return false
}

// BounceVertical reverses vertical direction (paddle bounce)
func (b *Ball) BounceVertical() {
	b.SpeedY = -b.SpeedY
}

// Deflect sets horizontal speed from where the ball struck a paddle whose
// left edge is at paddleX. A centre hit leaves the ball going straight.
func (b *Ball) Deflect(paddleX float64) {
	trajectory := b.X - (paddleX + PaddleDiff)
	b.SpeedX = trajectory * DeflectionFactor
}

// Reset places ball at the given centre with the restart vertical speed.
// SpeedX is left alone; it has no effect until the next paddle contact.
func (b *Ball) Reset(centerX, centerY float64) {
	b.X = centerX
	b.Y = centerY
	b.SpeedY = RestartSpeedY
	b.Contact = false
}

// Finite reports whether position and speed are all usable numbers.
func (b *Ball) Finite() bool {
	for _, v := range [...]float64{b.X, b.Y, b.SpeedX, b.SpeedY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Recover resets the ball and zeroes any non-finite horizontal speed.
func (b *Ball) Recover(centerX, centerY float64) {
	b.Reset(centerX, centerY)
	if math.IsNaN(b.SpeedX) || math.IsInf(b.SpeedX, 0) {
		b.SpeedX = 0
	}
}
