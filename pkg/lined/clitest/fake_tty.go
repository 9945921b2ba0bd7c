// Package clitest provides a fake TTY for testing the editor.
package clitest

import (
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"src.lined.sh/pkg/lined"
	"src.lined.sh/pkg/term"
)

const (
	// Maximum number of buffer updates FakeTTY expects to see.
	fakeTTYBufferUpdates = 1024
	// Maximum number of events FakeTTY produces.
	fakeTTYEvents = 1024
	// Maximum number of signals FakeTTY produces.
	fakeTTYSignals = 1024
)

// An implementation of the lined.TTY interface that is useful in tests.
type fakeTTY struct {
	setup func() (func(), error)
	// Channel that ReadEvent reads from. Can be used to inject events.
	eventCh chan term.Event
	// Channels for publishing updates of the main buffer and notes buffer.
	bufCh, notesBufCh chan *term.Buffer
	// Records history of the main buffer and notes buffer.
	bufs, notesBufs []*term.Buffer
	// Channel that NotifySignals returns. Can be used to inject signals.
	sigCh chan os.Signal

	sizeMutex sync.RWMutex
	// Predefined sizes.
	height, width int

	// Number of times the screen has been cleared.
	cleared int
}

// NewFakeTTY creates a new fake TTY and a handle for controlling it.
func NewFakeTTY() (lined.TTY, TTYCtrl) {
	tty := &fakeTTY{
		eventCh:    make(chan term.Event, fakeTTYEvents),
		sigCh:      make(chan os.Signal, fakeTTYSignals),
		bufCh:      make(chan *term.Buffer, fakeTTYBufferUpdates),
		notesBufCh: make(chan *term.Buffer, fakeTTYBufferUpdates),
		height:     24, width: 80,
	}
	return tty, TTYCtrl{tty}
}

// Delegates to the setup function specified using the SetSetup method of
// TTYCtrl, or returns a nop function and a nil error.
func (t *fakeTTY) Setup() (func(), error) {
	if t.setup == nil {
		return func() {}, nil
	}
	return t.setup()
}

// Reads the next injected event. When the event channel has been closed with
// TTYCtrl.CloseInput, returns term.ErrStopped.
func (t *fakeTTY) ReadEvent() (term.Event, error) {
	ev, ok := <-t.eventCh
	if !ok {
		return nil, term.ErrStopped
	}
	return ev, nil
}

// Nop.
func (t *fakeTTY) CloseReader() {}

func (t *fakeTTY) NotifySignals() <-chan os.Signal { return t.sigCh }

// Nop; the signal channel stays open so that the fake TTY can be used for
// multiple Read calls.
func (t *fakeTTY) StopSignals() {}

// Returns the size specified by using the SetSize method of TTYCtrl.
func (t *fakeTTY) Size() (h, w int) {
	t.sizeMutex.RLock()
	defer t.sizeMutex.RUnlock()
	return t.height, t.width
}

// Returns the last recorded buffer.
func (t *fakeTTY) Buffer() *term.Buffer {
	if len(t.bufs) == 0 {
		return nil
	}
	return t.bufs[len(t.bufs)-1]
}

// Records a nil buffer.
func (t *fakeTTY) ResetBuffer() { t.recordBuf(nil) }

// UpdateBuffer records a new pair of buffers, i.e. sending them to their
// respective channels and appending them to their respective slices.
func (t *fakeTTY) UpdateBuffer(bufNotes, buf *term.Buffer, _ bool) error {
	t.recordNotesBuf(bufNotes)
	t.recordBuf(buf)
	return nil
}

// Records a clear and a nil buffer, mirroring the reset of the real TTY's
// current buffer.
func (t *fakeTTY) ClearScreen() {
	t.cleared++
	t.recordBuf(nil)
}

// Nop.
func (t *fakeTTY) HideCursor() {}

// Nop.
func (t *fakeTTY) ShowCursor() {}

func (t *fakeTTY) recordBuf(buf *term.Buffer) {
	t.bufs = append(t.bufs, buf)
	t.bufCh <- buf
}

func (t *fakeTTY) recordNotesBuf(buf *term.Buffer) {
	t.notesBufs = append(t.notesBufs, buf)
	t.notesBufCh <- buf
}

// TTYCtrl is a handle for controlling a fake TTY.
type TTYCtrl struct{ *fakeTTY }

// SetSetup sets the return values of the Setup method of the fake TTY.
func (t TTYCtrl) SetSetup(restore func(), err error) {
	t.setup = func() (func(), error) {
		return restore, err
	}
}

// SetSize sets the size of the fake TTY.
func (t TTYCtrl) SetSize(h, w int) {
	t.sizeMutex.Lock()
	defer t.sizeMutex.Unlock()
	t.height, t.width = h, w
}

// Inject injects events to the fake TTY.
func (t TTYCtrl) Inject(events ...term.Event) {
	for _, event := range events {
		t.eventCh <- event
	}
}

// CloseInput closes the event channel, making subsequent ReadEvent calls
// return term.ErrStopped.
func (t TTYCtrl) CloseInput() {
	close(t.eventCh)
}

// InjectSignal injects signals.
func (t TTYCtrl) InjectSignal(sigs ...os.Signal) {
	for _, sig := range sigs {
		t.sigCh <- sig
	}
}

// ScreenCleared returns the number of times ClearScreen has been called on
// the fake TTY.
func (t TTYCtrl) ScreenCleared() int {
	return t.cleared
}

// BufferHistory returns a slice of all main buffers that have appeared.
func (t TTYCtrl) BufferHistory() []*term.Buffer { return t.bufs }

// LastBuffer returns the last main buffer that has appeared.
func (t TTYCtrl) LastBuffer() *term.Buffer {
	if len(t.bufs) == 0 {
		return nil
	}
	return t.bufs[len(t.bufs)-1]
}

// NotesBufferHistory returns a slice of all notes buffers that have appeared.
func (t TTYCtrl) NotesBufferHistory() []*term.Buffer { return t.notesBufs }

// LastNotesBuffer returns the last notes buffer that has appeared.
func (t TTYCtrl) LastNotesBuffer() *term.Buffer {
	if len(t.notesBufs) == 0 {
		return nil
	}
	return t.notesBufs[len(t.notesBufs)-1]
}

// TestBuffer verifies that a main buffer matching b will appear within the
// timeout, and fails the test if it doesn't.
func (t TTYCtrl) TestBuffer(tt *testing.T, b *term.Buffer) {
	tt.Helper()
	if !testBuffer(tt, b, t.bufCh) {
		if lastBuf := t.LastBuffer(); lastBuf != nil {
			tt.Logf("Last buffer: %s", lastBuf.TTYString())
		}
	}
}

// TestNotesBuffer verifies that a notes buffer matching b will appear within
// the timeout, and fails the test if it doesn't.
func (t TTYCtrl) TestNotesBuffer(tt *testing.T, b *term.Buffer) {
	tt.Helper()
	if !testBuffer(tt, b, t.notesBufCh) {
		bufs := t.NotesBufferHistory()
		tt.Logf("There has been %d notes buffers. Non-nil ones are:", len(bufs))
		for i, buf := range bufs {
			if buf != nil {
				tt.Logf("#%d:\n%s", i, buf.TTYString())
			}
		}
	}
}

// Tests that an expected buffer will appear within the timeout.
func testBuffer(t *testing.T, want *term.Buffer, ch <-chan *term.Buffer) bool {
	t.Helper()

	timeout := time.After(getUITestTimeout())
	for {
		select {
		case buf := <-ch:
			if reflect.DeepEqual(buf, want) {
				return true
			}
		case <-timeout:
			t.Errorf("Wanted buffer not shown")
			t.Logf("Want: %s", want.TTYString())
			return false
		}
	}
}

const uiTimeoutEnvName = "LINED_TEST_UI_TIMEOUT"

var uiTimeoutDefault = 100 * time.Millisecond

func getUITestTimeout() time.Duration {
	if d, err := time.ParseDuration(os.Getenv(uiTimeoutEnvName)); err == nil {
		return d
	}
	return uiTimeoutDefault
}
