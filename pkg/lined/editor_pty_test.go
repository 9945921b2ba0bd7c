//go:build unix

package lined_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"src.lined.sh/pkg/lined"
	"src.lined.sh/pkg/testutil"
)

// Exercises the editor against a real pty, covering terminal setup, the
// escape sequence decoder and the renderer together.
func TestRead_EndToEndWithPty(t *testing.T) {
	ed, ptmx, setupDone := setupPtyEditor(t)

	// The terminal is set up with ICRNL, so the carriage return arrives at
	// the editor as Enter.
	testReadFromPty(t, ed, ptmx, setupDone, "echo hello\r",
		lined.Result{Code: "echo hello", Kind: lined.ResultOK})
}

// Raw mode must disable ISIG; otherwise the line discipline would turn the
// 0x03 byte into SIGINT and it would never reach the decoder.
func TestRead_CtrlCFromPtyCancels(t *testing.T) {
	ed, ptmx, setupDone := setupPtyEditor(t)

	testReadFromPty(t, ed, ptmx, setupDone, "x\x03",
		lined.Result{Kind: lined.ResultCancel})
}

func setupPtyEditor(t *testing.T) (*lined.Editor, *os.File, <-chan struct{}) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	// Discard the editor's output so that writes to the tty never block. The
	// returned channel is closed after the first output byte; Read only
	// writes output after applying the terminal attributes, so this tells
	// tests when it is safe to send input that relies on raw mode.
	setupDone := make(chan struct{})
	go func() {
		var b [1]byte
		if _, err := ptmx.Read(b[:]); err != nil {
			return
		}
		close(setupDone)
		io.Copy(io.Discard, ptmx)
	}()

	return lined.NewEditor(lined.NewTTY(tty, tty)), ptmx, setupDone
}

func testReadFromPty(t *testing.T, ed *lined.Editor, ptmx *os.File, setupDone <-chan struct{}, input string, want lined.Result) {
	t.Helper()

	resultCh := make(chan lined.Result, 1)
	errCh := make(chan error, 1)
	go func() {
		result, err := ed.Read()
		resultCh <- result
		errCh <- err
	}()

	select {
	case <-setupDone:
	case <-time.After(testutil.Scaled(5 * time.Second)):
		t.Fatalf("editor did not set up the terminal")
	}
	if _, err := ptmx.WriteString(input); err != nil {
		t.Fatalf("cannot write to pty: %v", err)
	}

	select {
	case result := <-resultCh:
		if result != want {
			t.Errorf("Read -> %v, want %v", result, want)
		}
		if err := <-errCh; err != nil {
			t.Errorf("Read -> err %v, want nil", err)
		}
	case <-time.After(testutil.Scaled(5 * time.Second)):
		t.Fatalf("Read did not return")
	}
}
