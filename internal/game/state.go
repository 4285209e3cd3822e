package game

import "github.com/google/uuid"

// Field geometry and rules. None of these are configurable.
const (
	Width        = 500
	Height       = 700
	BallStartX   = 250
	BallStartY   = 350
	WinningScore = 7
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Side identifies who scored or won.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideComputer:
		return "Computer"
	}
	return ""
}

// Events reports what happened during a single step.
type Events uint16

const (
	EventPaddleHit Events = 1 << iota
	EventOpponentHit
	EventWallBounce
	EventPlayerScored
	EventComputerScored
	EventGameOver
	EventRecovered // ball had non-finite state and was recentred
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Session owns every piece of mutable game state. Only one goroutine may
// drive a session.
type Session struct {
	Width         float64
	Height        float64
	Ball          *Ball
	Player        *Paddle // Bottom
	Computer      *Paddle // Top
	PlayerScore   int
	ComputerScore int
	Profile       Profile
	Phase         Phase
	Winner        Side
	Tick          int
	MatchID       string

	// PlayerMoved is set by the first pointer move and never cleared. Both
	// horizontal ball motion and the opponent stay idle until then.
	PlayerMoved bool

	newGame    bool
	hostOffset float64
}

// NewSession creates a session in the NotStarted phase with speeds taken
// from profile.
func NewSession(profile Profile) *Session {
	ball := NewBall(BallStartX, BallStartY)
	ball.SpeedY = profile.SpeedY
	ball.SpeedX = profile.SpeedX

	return &Session{
		Width:    Width,
		Height:   Height,
		Ball:     ball,
		Player:   NewPaddle(PaddleStartX),
		Computer: NewPaddle(PaddleStartX),
		Profile:  profile,
		Phase:    PhaseNotStarted,
		newGame:  true,
	}
}

// Start begins a game from NotStarted or Ended: scores are zeroed and the
// ball is recentred. It returns false and changes nothing while running.
func (s *Session) Start() bool {
	if s.Phase == PhaseRunning {
		return false
	}
	s.Phase = PhaseRunning
	s.newGame = false
	s.PlayerScore = 0
	s.ComputerScore = 0
	s.Winner = SideNone
	s.Tick = 0
	s.MatchID = uuid.NewString()
	s.resetBall()
	return true
}

// Restart is the play-again command. It only acts from the Ended phase.
func (s *Session) Restart() bool {
	if s.Phase != PhaseEnded {
		return false
	}
	return s.Start()
}

// NewGame reports whether the session has never been started.
func (s *Session) NewGame() bool {
	return s.newGame
}

// Running reports whether another step should be scheduled.
func (s *Session) Running() bool {
	return s.Phase == PhaseRunning
}

// SetHostWidth records the width of the host display the pointer reports
// coordinates in. The field is assumed centred within it.
func (s *Session) SetHostWidth(w float64) {
	s.hostOffset = w/2 - s.Width/2
}

// HostOffset is the field's left edge in host coordinates.
func (s *Session) HostOffset() float64 {
	return s.hostOffset
}

// MovePointer centres the player paddle under an absolute host x coordinate.
func (s *Session) MovePointer(clientX float64) {
	s.PlayerMoved = true
	s.Player.X = clientX - s.hostOffset - PaddleDiff
	s.Player.Clamp(s.Width)
}

// Step advances the simulation by exactly one frame. It does nothing
// outside the Running phase.
func (s *Session) Step() Events {
	if s.Phase != PhaseRunning {
		return 0
	}
	s.Tick++

	s.Ball.Move(s.PlayerMoved)
	events := s.resolveBoundaries()

	if !s.Ball.Finite() {
		s.Ball.Recover(s.Width/2, s.Height/2)
		events |= EventRecovered
	}

	s.moveComputer()

	if s.checkWinner() {
		events |= EventGameOver
	}
	return events
}

// resolveBoundaries handles side walls, both paddles and missed balls.
func (s *Session) resolveBoundaries() Events {
	var events Events
	b := s.Ball

	if b.BounceWalls(s.Width) {
		events |= EventWallBounce
	}

	if b.Y > s.Height-PaddleDiff {
		if s.Player.Contains(b.X) {
			b.Contact = true
			b.BounceVertical()
			b.Deflect(s.Player.X)
			events |= EventPaddleHit
		} else if b.Y > s.Height {
			s.resetBall()
			s.ComputerScore++
			events |= EventComputerScored
		}
	}

	// The computer paddle returns the ball without adding spin.
	if b.Y < PaddleDiff {
		if s.Computer.Contains(b.X) {
			b.BounceVertical()
			events |= EventOpponentHit
		} else if b.Y < 0 {
			s.resetBall()
			s.PlayerScore++
			events |= EventPlayerScored
		}
	}

	return events
}

// moveComputer chases the ball once the player has engaged.
func (s *Session) moveComputer() {
	if !s.PlayerMoved {
		return
	}
	s.Computer.Track(s.Ball.X, s.Profile.ComputerSpeed)
	s.Computer.Clamp(s.Width)
}

// checkWinner ends the session the step either side reaches WinningScore.
func (s *Session) checkWinner() bool {
	switch {
	case s.PlayerScore == WinningScore:
		s.Winner = SidePlayer
	case s.ComputerScore == WinningScore:
		s.Winner = SideComputer
	default:
		return false
	}
	s.Phase = PhaseEnded
	return true
}

func (s *Session) resetBall() {
	s.Ball.Reset(s.Width/2, s.Height/2)
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Width, Height float64
	BallX, BallY  float64
	BallRadius    float64
	PlayerX       float64
	ComputerX     float64
	PaddleWidth   float64
	PaddleHeight  float64
	PlayerScore   int
	ComputerScore int
	Phase         Phase
	Winner        Side
	Tick          int
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:         s.Width,
		Height:        s.Height,
		BallX:         s.Ball.X,
		BallY:         s.Ball.Y,
		BallRadius:    s.Ball.Radius,
		PlayerX:       s.Player.X,
		ComputerX:     s.Computer.X,
		PaddleWidth:   s.Player.Width,
		PaddleHeight:  s.Player.Height,
		PlayerScore:   s.PlayerScore,
		ComputerScore: s.ComputerScore,
		Phase:         s.Phase,
		Winner:        s.Winner,
		Tick:          s.Tick,
	}
}
