package lined

import (
	"fmt"
	"os"
	"os/signal"

	"src.lined.sh/pkg/sys"
	"src.lined.sh/pkg/term"
)

// TTY is the type of the terminal dependency of the editor.
type TTY interface {
	// Setup sets up the terminal for the editor.
	//
	// This method returns a restore function that undoes the setup, and any
	// error during setup. It only returns fatal errors that make the terminal
	// unsuitable for later operations.
	//
	// This method should be called before any other method is called.
	Setup() (restore func(), err error)

	// ReadEvent reads a terminal event. It blocks until an event is available
	// or CloseReader is called.
	ReadEvent() (term.Event, error)
	// CloseReader releases the resources used for reading events. Any
	// outstanding ReadEvent call is aborted with term.ErrStopped.
	CloseReader()

	// NotifySignals starts relaying signals and returns a channel on which
	// signals are delivered.
	NotifySignals() <-chan os.Signal
	// StopSignals stops the relaying of signals.
	StopSignals()

	// Size returns the height and width of the terminal.
	Size() (h, w int)

	// Buffer returns the current buffer. The initial value of the current
	// buffer is nil.
	Buffer() *term.Buffer
	// ResetBuffer resets the current buffer to nil without actuating any
	// redraw.
	ResetBuffer()
	// UpdateBuffer updates the current buffer and draws it to the terminal.
	UpdateBuffer(bufNotes, bufMain *term.Buffer, full bool) error

	// ClearScreen clears the terminal screen, places the cursor at the top
	// left corner, and resets the current buffer.
	ClearScreen()
	// HideCursor hides the cursor.
	HideCursor()
	// ShowCursor shows the cursor.
	ShowCursor()
}

// NewTTY returns a new TTY from input and output terminal files.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in: in, out: out, w: term.NewWriter(out)}
}

type aTTY struct {
	in, out *os.File
	r       term.Reader
	w       term.Writer
	sigCh   chan os.Signal
}

func (t *aTTY) Setup() (func(), error) {
	restore, err := term.Setup(t.in, t.out)
	return func() {
		err := restore()
		if err != nil {
			fmt.Fprintln(t.out, "failed to restore terminal properties:", err)
		}
	}, err
}

func (t *aTTY) ReadEvent() (term.Event, error) {
	if t.r == nil {
		r, err := term.NewReader(t.in)
		if err != nil {
			return nil, err
		}
		t.r = r
	}
	return t.r.ReadEvent()
}

func (t *aTTY) CloseReader() {
	if t.r != nil {
		t.r.Close()
		t.r = nil
	}
}

func (t *aTTY) NotifySignals() <-chan os.Signal {
	// Subscribe only to the signals the editor reacts to, so that other
	// signals keep their default disposition while Read is active.
	t.sigCh = sys.NotifySignals(sys.SIGWINCH)
	return t.sigCh
}

func (t *aTTY) StopSignals() {
	signal.Stop(t.sigCh)
	close(t.sigCh)
	t.sigCh = nil
}

func (t *aTTY) Size() (h, w int) {
	return sys.WinSize(t.out)
}

func (t *aTTY) Buffer() *term.Buffer {
	return t.w.Buffer()
}

func (t *aTTY) ResetBuffer() {
	t.w.ResetBuffer()
}

func (t *aTTY) UpdateBuffer(bufNotes, bufMain *term.Buffer, full bool) error {
	return t.w.UpdateBuffer(bufNotes, bufMain, full)
}

func (t *aTTY) ClearScreen() {
	t.w.ClearScreen()
	// The screen is now empty with the cursor at the top left corner, so the
	// next update must start from scratch.
	t.w.ResetBuffer()
}

func (t *aTTY) HideCursor() {
	t.w.HideCursor()
}

func (t *aTTY) ShowCursor() {
	t.w.ShowCursor()
}
