package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/ui"
)

const title = "Neon Pong"

// Hooks lets the caller observe the session without owning the loop.
type Hooks struct {
	// OnStart is called after a game starts or restarts.
	OnStart func()
	// OnEvents is called after every step that produced events.
	OnEvents func(game.Events)
}

// Input is the subset of ebiten input the game reads.
type Input interface {
	CursorPosition() (int, int)
	KeyJustPressed(key ebiten.Key) bool
	ClickJustPressed() bool
	SetCursorHidden(hidden bool)
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) ClickJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (ebitenInput) SetCursorHidden(hidden bool) {
	if hidden {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	session *game.Session
	hooks   Hooks
	input   Input
	canvas  *Canvas

	// pointerX is the last pointer position in field pixels.
	pointerX   float64
	lastCursor [2]int
	seenCursor bool
}

// NewGame wires a started session to ebiten input.
func NewGame(session *game.Session, hooks Hooks, input Input, faces *Faces) *Game {
	// The logical screen is exactly the field, so the pointer needs no offset
	session.SetHostWidth(game.Width)
	return &Game{
		session:  session,
		hooks:    hooks,
		input:    input,
		canvas:   NewCanvas(faces),
		pointerX: session.Player.Center(),
	}
}

func (g *Game) Update() error {
	if g.input.KeyJustPressed(ebiten.KeyEscape) || g.input.KeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.handlePointer()

	if !g.session.Running() {
		g.handleGameOver()
		return nil
	}

	if events := g.session.Step(); events != 0 && g.hooks.OnEvents != nil {
		g.hooks.OnEvents(events)
	}
	if !g.session.Running() {
		g.input.SetCursorHidden(false)
	}
	return nil
}

func (g *Game) handlePointer() {
	x, y := g.input.CursorPosition()
	cursor := [2]int{x, y}
	if !g.seenCursor || cursor != g.lastCursor {
		moved := g.seenCursor
		g.seenCursor = true
		g.lastCursor = cursor
		// The first reading is where the cursor already was, not a move
		if moved && g.session.Running() {
			g.movePointer(float64(x))
			g.input.SetCursorHidden(true)
		}
	}

	if !g.session.Running() {
		return
	}
	if g.input.KeyJustPressed(ebiten.KeyLeft) || g.input.KeyJustPressed(ebiten.KeyA) {
		g.movePointer(g.pointerX - ui.NudgeStep)
	}
	if g.input.KeyJustPressed(ebiten.KeyRight) || g.input.KeyJustPressed(ebiten.KeyD) {
		g.movePointer(g.pointerX + ui.NudgeStep)
	}
}

func (g *Game) movePointer(x float64) {
	g.session.MovePointer(x)
	g.pointerX = g.session.Player.Center()
}

func (g *Game) handleGameOver() {
	restart := g.input.KeyJustPressed(ebiten.KeyEnter) || g.input.KeyJustPressed(ebiten.KeyR)
	if !restart && g.input.ClickJustPressed() {
		x, y := g.input.CursorPosition()
		restart = ui.PlayAgainButton.Contains(float64(x), float64(y))
	}
	if restart && g.session.Restart() && g.hooks.OnStart != nil {
		g.hooks.OnStart()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	snap := g.session.Snapshot()
	if g.session.Running() {
		ui.DrawField(g.canvas, snap)
	} else {
		ui.DrawGameOver(g.canvas, snap)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Layout()
}

// Run opens the window and blocks until it is closed. The session must
// already be started.
func Run(session *game.Session, hooks Hooks) error {
	faces, err := loadFonts()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(game.Width, game.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(session, hooks, ebitenInput{}, faces)); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}
