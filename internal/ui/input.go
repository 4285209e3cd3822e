package ui

import "github.com/gdamore/tcell/v2"

// NudgeStep is how far one arrow key press moves the pointer, in field pixels.
const NudgeStep = 25

// Action is what a key press asks the game to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
	ActionNudgeLeft
	ActionNudgeRight
)

// KeyToAction converts a key event to a game action
func KeyToAction(key tcell.Key, r rune) Action {
	switch {
	case IsQuitKey(key, r):
		return ActionQuit
	case IsRestartKey(key, r):
		return ActionRestart
	}

	switch key {
	case tcell.KeyLeft:
		return ActionNudgeLeft
	case tcell.KeyRight:
		return ActionNudgeRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return ActionNudgeLeft
		case 'd', 'D':
			return ActionNudgeRight
		}
	}
	return ActionNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsRestartKey returns true if the key is the play-again command
func IsRestartKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEnter {
		return true
	}
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}

// IsClick reports whether a mouse event carries a primary button press.
func IsClick(ev *tcell.EventMouse) bool {
	return ev.Buttons()&tcell.Button1 != 0
}
