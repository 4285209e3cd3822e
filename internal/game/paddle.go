package game

import "math"

const (
	PaddleWidth  = 100
	PaddleHeight = 12
	PaddleDiff   = 50  // Half a paddle; also the depth of the collision band at each end
	PaddleStartX = 200 // Left edge of both paddles at load
)

type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

func NewPaddle(x float64) *Paddle {
	return &Paddle{X: x, Width: PaddleWidth, Height: PaddleHeight}
}

// Contains reports whether x lies strictly inside the paddle span.
func (p *Paddle) Contains(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

func (p *Paddle) Center() float64 {
	return p.X + PaddleDiff
}

// Clamp keeps the paddle inside a field of the given width.
func (p *Paddle) Clamp(fieldWidth float64) {
	if math.IsNaN(p.X) {
		p.X = 0
		return
	}
	p.X = math.Max(0, math.Min(fieldWidth-p.Width, p.X))
}

// Track steps the paddle toward target by speed. A target exactly at the
// centre moves it left.
func (p *Paddle) Track(target, speed float64) {
	if p.Center() < target {
		p.X += speed
	} else {
		p.X -= speed
	}
}
