// Package term owns the live tcell.Screen: initializing and restoring
// the terminal, and translating raw tcell key events into the app
// package's logical Key vocabulary. Resize events are read directly by
// internal/sched.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/r3ap3r2004/dutree/internal/app"
)

// Terminal owns the tcell.Screen for the process lifetime.
type Terminal struct {
	Screen tcell.Screen
}

// Open initializes and enters a raw tcell screen. Failure here is fatal
// to startup and is reported as a StartupError.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, app.NewStartupError(fmt.Errorf("allocating screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		return nil, app.NewStartupError(fmt.Errorf("initializing screen: %w", err))
	}
	screen.HideCursor()
	return &Terminal{Screen: screen}, nil
}

// Close restores the terminal to its prior state. Safe to call even if
// the screen was never successfully initialized.
func (t *Terminal) Close() {
	if t.Screen != nil {
		t.Screen.Fini()
	}
}

// Size returns the current screen dimensions in character cells.
func (t *Terminal) Size() (width, height int) {
	return t.Screen.Size()
}

// DecodeKey translates a tcell key event into the app package's logical
// Key, dropping anything outside the keybinding list the app understands.
func DecodeKey(ev *tcell.EventKey) (app.Key, bool) {
	if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Key() == tcell.KeyCtrlC) {
		return app.KeyCtrlC, true
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return app.KeyUp, true
	case tcell.KeyDown:
		return app.KeyDown, true
	case tcell.KeyLeft:
		return app.KeyLeft, true
	case tcell.KeyRight:
		return app.KeyRight, true
	case tcell.KeyEnter:
		return app.KeyEnter, true
	case tcell.KeyEscape:
		return app.KeyEsc, true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDEL:
		return app.KeyBackspace, true
	case tcell.KeyCtrlC:
		return app.KeyCtrlC, true
	case tcell.KeyCtrlF:
		return app.KeyRuneL, true
	case tcell.KeyCtrlB:
		return app.KeyRuneH, true
	case tcell.KeyCtrlN:
		return app.KeyRuneJ, true
	case tcell.KeyCtrlP:
		return app.KeyRuneK, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return app.KeyRuneH, true
		case 'j':
			return app.KeyRuneJ, true
		case 'k':
			return app.KeyRuneK, true
		case 'l':
			return app.KeyRuneL, true
		case 'y', 'Y':
			return app.KeyRuneY, true
		case 'n', 'N':
			return app.KeyRuneN, true
		case 'q':
			return app.KeyRuneQ, true
		}
	}
	return app.KeyUnknown, false
}
