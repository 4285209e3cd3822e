package game

import (
	"math"
	"testing"
)

func TestBall_Move_VerticalSignIsInverted(t *testing.T) {
	ball := NewBall(100.0, 200.0)
	ball.SpeedY = -1.0

	ball.Move(false)

	// Negative SpeedY carries the ball down the field
	if ball.Y != 201.0 {
		t.Errorf("expected Y=201.0, got %f", ball.Y)
	}

	ball.SpeedY = 2.5
	ball.Move(false)

	if ball.Y != 198.5 {
		t.Errorf("expected Y=198.5, got %f", ball.Y)
	}
}

func TestBall_Move_HorizontalNeedsEngagementAndContact(t *testing.T) {
	tests := []struct {
		name    string
		engaged bool
		contact bool
		wantX   float64
	}{
		{"idle player", false, true, 100},
		{"no contact yet", true, false, 100},
		{"engaged with contact", true, true, 104},
		{"neither", false, false, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(100.0, 200.0)
			ball.SpeedX = 4.0
			ball.Contact = tt.contact

			ball.Move(tt.engaged)

			if ball.X != tt.wantX {
				t.Errorf("expected X=%f, got %f", tt.wantX, ball.X)
			}
		})
	}
}

func TestBall_BounceWalls(t *testing.T) {
	tests := []struct {
		name       string
		x, speedX  float64
		wantBounce bool
		wantSpeedX float64
	}{
		{"past left moving left", -1, -2, true, 2},
		{"past left moving right", -1, 2, false, 2},
		{"past right moving right", 501, 3, true, -3},
		{"past right moving left", 501, -3, false, -3},
		{"on left edge", 0, -2, false, -2},
		{"on right edge", 500, 2, false, 2},
		{"inside", 250, 5, false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(tt.x, 300)
			ball.SpeedX = tt.speedX

			got := ball.BounceWalls(Width)

			if got != tt.wantBounce {
				t.Errorf("expected bounce=%v, got %v", tt.wantBounce, got)
			}
			if ball.SpeedX != tt.wantSpeedX {
				t.Errorf("expected SpeedX=%f, got %f", tt.wantSpeedX, ball.SpeedX)
			}
		})
	}
}

func TestBall_BounceWalls_OncePerCrossing(t *testing.T) {
	ball := NewBall(-5, 300)
	ball.SpeedX = -2

	if !ball.BounceWalls(Width) {
		t.Fatal("expected first out-of-bounds check to bounce")
	}
	// Still outside, but now heading back in
	if ball.BounceWalls(Width) {
		t.Error("expected second check without re-entry not to bounce")
	}
	if ball.SpeedX != 2 {
		t.Errorf("expected SpeedX=2, got %f", ball.SpeedX)
	}
}

func TestBall_Deflect(t *testing.T) {
	paddleX := 200.0

	// Centre hit goes straight
	ball := NewBall(paddleX+PaddleDiff, 660)
	ball.SpeedX = 7
	ball.Deflect(paddleX)
	if ball.SpeedX != 0 {
		t.Errorf("expected SpeedX=0 for centre hit, got %f", ball.SpeedX)
	}

	for _, d := range []float64{-49, -20, -1, 1, 20, 37, 49} {
		ball := NewBall(paddleX+PaddleDiff+d, 660)
		ball.Deflect(paddleX)
		if ball.SpeedX != d*0.3 {
			t.Errorf("offset %f: expected SpeedX=%f, got %f", d, d*0.3, ball.SpeedX)
		}
	}
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(17.0, 640.0)
	ball.SpeedX = 4.5
	ball.SpeedY = 3.0
	ball.Contact = true

	ball.Reset(250, 350)

	if ball.X != 250 || ball.Y != 350 {
		t.Errorf("expected ball at (250, 350), got (%f, %f)", ball.X, ball.Y)
	}
	if ball.SpeedY != RestartSpeedY {
		t.Errorf("expected SpeedY=%f, got %f", RestartSpeedY, ball.SpeedY)
	}
	if ball.Contact {
		t.Error("expected contact flag to be cleared")
	}
	if ball.SpeedX != 4.5 {
		t.Errorf("expected SpeedX untouched, got %f", ball.SpeedX)
	}
}

func TestBall_Finite(t *testing.T) {
	ball := NewBall(10, 10)
	if !ball.Finite() {
		t.Error("expected fresh ball to be finite")
	}

	ball.SpeedX = math.NaN()
	if ball.Finite() {
		t.Error("expected NaN speed to be reported")
	}

	ball.SpeedX = 0
	ball.Y = math.Inf(1)
	if ball.Finite() {
		t.Error("expected infinite position to be reported")
	}
}

func TestBall_Recover(t *testing.T) {
	ball := NewBall(math.NaN(), 10)
	ball.SpeedX = math.Inf(-1)
	ball.Contact = true

	ball.Recover(250, 350)

	if !ball.Finite() {
		t.Fatalf("expected finite ball after recover, got %+v", ball)
	}
	if ball.SpeedX != 0 {
		t.Errorf("expected SpeedX=0, got %f", ball.SpeedX)
	}
	if ball.Contact {
		t.Error("expected contact flag to be cleared")
	}
}
