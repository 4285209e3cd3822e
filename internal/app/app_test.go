package app

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/neonpong/internal/config"
	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/log"
	"github.com/diegok/neonpong/internal/ui"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(100, 36)
	t.Cleanup(sim.Fini)
	return sim
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := log.Default()
	buf := &bytes.Buffer{}
	log.SetDefaultLogger(log.New(buf, "", 0, log.LogLevelDebug))
	t.Cleanup(func() { log.SetDefaultLogger(prev) })
	return buf
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.ParseArgs([]string{"--mute"})
	require.NoError(t, err)
	return cfg
}

// newTestApp wires an App to a 100x36 simulated terminal without starting
// the loop. The field is 50 columns wide from column 25 and the host is
// 1000 field pixels wide.
func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := newSimScreen(t)
	a := NewApp(testConfig(t))
	a.screen = ui.NewScreen(sim)
	a.renderer = ui.NewRenderer(a.screen)
	a.session.SetHostWidth(a.renderer.Canvas().HostWidth())
	a.start()
	return a, sim
}

// endGame lets the computer score its winning point on the next frame.
func endGame(t *testing.T, a *App) {
	t.Helper()
	s := a.session
	s.ComputerScore = game.WinningScore - 1
	s.Ball.X = 20
	s.Ball.Y = game.Height + 1
	s.Ball.SpeedY = -1
	a.frame()
	require.False(t, s.Running())
}

func TestStartLogsMatch(t *testing.T) {
	buf := captureLogs(t)
	a, _ := newTestApp(t)

	require.True(t, a.session.Running())
	require.NotEmpty(t, a.session.MatchID)
	assert.Contains(t, buf.String(), `"match":"`+a.session.MatchID+`"`)
	assert.Contains(t, buf.String(), "Game started with desktop profile")
}

func TestProfileFromConfig(t *testing.T) {
	cfg, err := config.ParseArgs([]string{"--viewport-width", "400"})
	require.NoError(t, err)

	a := NewApp(cfg)
	assert.Equal(t, game.MobileProfile, a.session.Profile)
}

func TestFrameStepsAfterRender(t *testing.T) {
	a, sim := newTestApp(t)

	a.frame()
	assert.Equal(t, 1, a.session.Tick)

	// The rendered frame shows the state before the step
	r, _, _, _ := sim.GetContent(50, 17)
	assert.Equal(t, ui.HalfBlock, r)
}

func TestMouseMovesPaddle(t *testing.T) {
	a, _ := newTestApp(t)

	quit := a.handleEvent(tcell.NewEventMouse(50, 10, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, quit)
	assert.True(t, a.session.PlayerMoved)
	assert.InDelta(t, 255.0, a.session.Player.Center(), 1e-6)

	// Far outside the field clamps to the edge
	a.handleEvent(tcell.NewEventMouse(99, 10, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, float64(game.Width-game.PaddleWidth), a.session.Player.X)
}

func TestKeyboardNudge(t *testing.T) {
	a, _ := newTestApp(t)
	start := a.session.Player.Center()

	a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.InDelta(t, start+ui.NudgeStep, a.session.Player.Center(), 1e-6)
	assert.True(t, a.session.PlayerMoved)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	assert.InDelta(t, start-ui.NudgeStep, a.session.Player.Center(), 1e-6)

	// Keyboard cannot push the pointer past the wall
	for i := 0; i < 40; i++ {
		a.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	}
	assert.Equal(t, 0.0, a.session.Player.X)
	a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.InDelta(t, float64(ui.NudgeStep), a.session.Player.X, 1e-6)
}

func TestQuitKey(t *testing.T) {
	a, _ := newTestApp(t)

	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	a, _ := newTestApp(t)
	id := a.session.MatchID
	a.session.PlayerScore = 3

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, id, a.session.MatchID)
	assert.Equal(t, 3, a.session.PlayerScore)
}

func TestGameOverThenPlayAgain(t *testing.T) {
	buf := captureLogs(t)
	a, _ := newTestApp(t)
	first := a.session.MatchID

	endGame(t, a)
	assert.Contains(t, buf.String(), "Computer won 0-7")

	// The banner replaces the field
	a.frame()
	assert.Equal(t, game.PhaseEnded, a.session.Phase)
	assert.True(t, a.renderer.Canvas().Hidden())

	// Pointer moves are ignored once the game is over
	x := a.session.Player.X
	a.handleEvent(tcell.NewEventMouse(30, 10, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, x, a.session.Player.X)

	// Clicking outside the button does nothing
	a.handleEvent(tcell.NewEventMouse(30, 2, tcell.Button1, tcell.ModNone))
	assert.False(t, a.session.Running())

	// Column 50, row 19 is inside the Play Again button
	a.handleEvent(tcell.NewEventMouse(50, 19, tcell.Button1, tcell.ModNone))
	require.True(t, a.session.Running())
	assert.NotEqual(t, first, a.session.MatchID)
	assert.Equal(t, 0, a.session.ComputerScore)
	assert.Contains(t, buf.String(), "Rematch started")

	a.frame()
	assert.False(t, a.renderer.Canvas().Hidden())
}

func TestRestartKeyAfterGameOver(t *testing.T) {
	a, _ := newTestApp(t)
	endGame(t, a)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.True(t, a.session.Running())
	assert.Equal(t, game.SideNone, a.session.Winner)
}

func TestResizeUpdatesHostOffset(t *testing.T) {
	a, sim := newTestApp(t)
	assert.InDelta(t, 250.0, a.session.HostOffset(), 1e-6)

	sim.SetSize(200, 36)
	a.handleEvent(tcell.NewEventResize(200, 36))
	assert.InDelta(t, 750.0, a.session.HostOffset(), 1e-6)

	// The same field column still maps to the same paddle position
	a.handleEvent(tcell.NewEventMouse(100, 10, tcell.ButtonNone, tcell.ModNone))
	assert.InDelta(t, 255.0, a.session.Player.Center(), 1e-6)
}

func TestRunTerminalQuits(t *testing.T) {
	sim := newSimScreen(t)
	a := NewApp(testConfig(t))

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	err := a.RunTerminal(ui.NewScreen(sim))
	assert.NoError(t, err)
	assert.True(t, a.session.Running())
}
