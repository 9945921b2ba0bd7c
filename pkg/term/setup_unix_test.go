//go:build unix

package term

import (
	"testing"

	"github.com/creack/pty"
)

func TestSetup(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	restore, err := Setup(tty, tty)
	if err != nil {
		t.Errorf("Setup returned error: %v", err)
	}
	if restore == nil {
		t.Fatalf("Setup returned nil restore function")
	}
	if err := restore(); err != nil {
		t.Errorf("restore returned error: %v", err)
	}
}
