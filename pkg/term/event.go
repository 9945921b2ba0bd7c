package term

import "src.lined.sh/pkg/ui"

// Event represents an event that can be read from the terminal.
type Event interface {
	isEvent()
}

// KeyEvent represents a key press.
type KeyEvent ui.Key

// K constructs a new KeyEvent.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}

func (KeyEvent) isEvent() {}

func (e KeyEvent) String() string {
	return ui.Key(e).String()
}

// MouseEvent represents a mouse event (either pressing or releasing).
type MouseEvent struct {
	Pos
	Down   bool
	Button int
	Mod    ui.Mod
}

func (MouseEvent) isEvent() {}

// CursorPosition represents a report of the current cursor position on the
// terminal, usually as a response from the terminal to a cursor position
// query.
type CursorPosition Pos

func (CursorPosition) isEvent() {}

// PasteSetting indicates the start or finish of pasted text.
type PasteSetting bool

func (PasteSetting) isEvent() {}
