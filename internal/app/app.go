package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/neonpong/internal/audio"
	"github.com/diegok/neonpong/internal/config"
	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/log"
	"github.com/diegok/neonpong/internal/ui"
	"github.com/diegok/neonpong/internal/window"
)

// FrameInterval is the simulation rate of the terminal display, one step per frame.
const FrameInterval = 16 * time.Millisecond

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *game.Session
	audio    *audio.Player
	logger   *log.Logger

	// pointerX is the last pointer position in host coordinates, used by
	// the keyboard fallback.
	pointerX float64

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:     cfg,
		session: game.NewSession(cfg.Profile()),
		logger:  log.Default(),
		quit:    make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes audio, sets up signal handling, and starts the chosen display.
func (a *App) Run() error {
	player, err := audio.New(a.cfg.Mute)
	if err != nil {
		// The game works without sound
		log.Warn("Audio disabled: %v", err)
	}
	a.audio = player

	if a.cfg.Display == config.DisplayWindow {
		defer a.audio.Close()
		a.start()
		return window.Run(a.session, window.Hooks{
			OnStart:  func() { a.started(false) },
			OnEvents: a.handleGameEvents,
		})
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.audio.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.Stop()
		case <-a.quit:
		}
	}()

	runErr := a.RunTerminal(screen)

	a.cleanup()

	return runErr
}

// RunTerminal plays on an already initialized screen until the player quits.
func (a *App) RunTerminal(screen *ui.Screen) error {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.session.SetHostWidth(a.renderer.Canvas().HostWidth())
	a.start()
	return a.mainLoop()
}

// Stop ends the main loop. It is safe to call more than once.
func (a *App) Stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.Stop()
				return nil
			}

		case <-ticker.C:
			a.frame()
		}
	}
}

// frame renders the current state and then advances the simulation one step.
// Once the game has ended it keeps showing the banner.
func (a *App) frame() {
	snap := a.session.Snapshot()
	if !a.session.Running() {
		a.renderer.RenderGameOver(snap)
		return
	}

	a.renderer.RenderGame(snap)
	a.handleGameEvents(a.session.Step())
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.renderer.Resize()
		a.session.SetHostWidth(a.renderer.Canvas().HostWidth())
		a.pointerX = a.session.Player.Center() + a.session.HostOffset()
	}

	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ui.KeyToAction(ev.Key(), ev.Rune()) {
	case ui.ActionQuit:
		return true
	case ui.ActionRestart:
		a.restart()
	case ui.ActionNudgeLeft:
		a.movePointer(a.pointerX - ui.NudgeStep)
	case ui.ActionNudgeRight:
		a.movePointer(a.pointerX + ui.NudgeStep)
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if a.session.Running() {
		a.movePointer(a.renderer.Canvas().HostX(x))
		return
	}

	if ui.IsClick(ev) {
		fx, fy := a.renderer.Canvas().FieldPoint(x, y)
		if ui.PlayAgainButton.Contains(fx, fy) {
			a.restart()
		}
	}
}

// movePointer steers the player paddle while a game is running.
func (a *App) movePointer(hostX float64) {
	if !a.session.Running() {
		return
	}
	a.session.MovePointer(hostX)
	// Remember the clamped position so the keyboard never drifts off field
	a.pointerX = a.session.Player.Center() + a.session.HostOffset()
}

// start begins the first game, or a new one after the last ended.
func (a *App) start() {
	newGame := a.session.NewGame()
	if a.session.Start() {
		a.started(newGame)
	}
}

// restart is the play-again command; it does nothing mid-game.
func (a *App) restart() {
	if a.session.Restart() {
		a.started(false)
	}
}

func (a *App) started(newGame bool) {
	a.logger = log.Default().With("match", a.session.MatchID)
	a.pointerX = a.session.Player.Center() + a.session.HostOffset()
	if newGame {
		a.logger.Info("Game started with %s profile", a.session.Profile.Name)
	} else {
		a.logger.Info("Rematch started with %s profile", a.session.Profile.Name)
	}
}

// handleGameEvents plays sounds and logs what happened during a step.
func (a *App) handleGameEvents(events game.Events) {
	if events == 0 {
		return
	}
	if a.audio != nil {
		a.audio.Play(events)
	}

	s := a.session
	if events.Has(game.EventRecovered) {
		a.logger.Warn("Ball state was not finite at tick %d, recentred", s.Tick)
	}
	if events.Has(game.EventPaddleHit) {
		a.logger.Debug("Player hit the ball, speed now (%.2f, %.2f)", s.Ball.SpeedX, s.Ball.SpeedY)
	}
	if events.Has(game.EventOpponentHit) {
		a.logger.Debug("Computer returned the ball")
	}
	if events.Has(game.EventWallBounce) {
		a.logger.Trace("Ball bounced off a side wall at x=%.1f", s.Ball.X)
	}
	if events.Has(game.EventPlayerScored) || events.Has(game.EventComputerScored) {
		a.logger.Info("Score player %d - computer %d", s.PlayerScore, s.ComputerScore)
	}
	if events.Has(game.EventGameOver) {
		a.logger.Info("%s won %d-%d after %d ticks", s.Winner, s.PlayerScore, s.ComputerScore, s.Tick)
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.Stop()

	if a.audio != nil {
		a.audio.Close()
	}

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
