package histutil

import (
	"errors"

	"src.lined.sh/pkg/store/storedefs"
)

// ErrEndOfHistory is returned by Walker.Prev and Walker.Next when the walker
// would move past either end of the history.
var ErrEndOfHistory = errors.New("end of history")

// Walker is a cursor for walking through a snapshot of the command history.
// It starts below the newest entry; Prev moves towards older entries and Next
// towards newer ones. The position is clamped at the oldest entry, and moving
// past the newest entry returns ErrEndOfHistory, which the caller typically
// uses as the signal to stop browsing and restore the pending input.
type Walker struct {
	cmds []storedefs.Cmd
	// Index into cmds; len(cmds) means the walker is below the newest entry.
	pos int
}

// NewWalker returns a Walker over a snapshot of the given store.
func NewWalker(store Store) (*Walker, error) {
	cmds, err := store.AllCmds()
	if err != nil {
		return nil, err
	}
	return &Walker{cmds, len(cmds)}, nil
}

// Prev moves the walker to the previous (older) entry and returns it. If the
// walker is already at the oldest entry, it stays there and returns
// ErrEndOfHistory.
func (w *Walker) Prev() (storedefs.Cmd, error) {
	if w.pos == 0 {
		return storedefs.Cmd{Seq: -1}, ErrEndOfHistory
	}
	w.pos--
	return w.cmds[w.pos], nil
}

// Next moves the walker to the next (newer) entry and returns it. Moving past
// the newest entry returns ErrEndOfHistory.
func (w *Walker) Next() (storedefs.Cmd, error) {
	if w.pos >= len(w.cmds) {
		return storedefs.Cmd{Seq: -1}, ErrEndOfHistory
	}
	w.pos++
	if w.pos == len(w.cmds) {
		return storedefs.Cmd{Seq: -1}, ErrEndOfHistory
	}
	return w.cmds[w.pos], nil
}

// Current returns the entry the walker is at, and whether the walker is at an
// entry at all.
func (w *Walker) Current() (storedefs.Cmd, bool) {
	if w.pos == len(w.cmds) {
		return storedefs.Cmd{Seq: -1}, false
	}
	return w.cmds[w.pos], true
}
