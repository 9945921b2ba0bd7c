//go:build unix

package term

import (
	"fmt"
	"os"

	"src.lined.sh/pkg/errutil"
	"src.lined.sh/pkg/sys"
)

func setup(in, out *os.File) (func() error, error) {
	// On Unix, use input for changing the terminal attribute.
	fd := int(in.Fd())
	term, err := sys.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %s", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetIExten(false)
	term.SetEcho(false)
	// Ctrl-C, Ctrl-\ and Ctrl-Z must reach the reader as ordinary bytes
	// instead of generating signals; the editor binds them itself.
	term.SetISig(false)
	term.SetVMin(1)
	term.SetVTime(0)

	// Enforcing crnl translation on readline. Assuming user won't set
	// inlcr or -onlcr, otherwise we have to hardcode all of them here.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %s", err)
	}

	var errSetupVT error
	err = setupVT(out)
	if err != nil {
		errSetupVT = fmt.Errorf("can't set up VT: %s", err)
	}

	restore := func() error {
		return errutil.Multi(savedTermios.ApplyToFd(fd), restoreVT(out))
	}

	return restore, errSetupVT
}

func sanitize(in, out *os.File) {
	// Some programs use non-blocking IO but do not correctly clear the
	// non-blocking flags after exiting, so we always clear the flag.
	unblock(in)
	unblock(out)
	// Re-disable autowrap in case the program turned it back on.
	setupVT(out)
}

func unblock(f *os.File) {
	// Calling File.Fd is documented to make the file blocking again.
	f.Fd()
}

// Disables autowrap. The terminal emulator will otherwise insert a hard
// newline when a long line is echoed, confusing the delta renderer.
func setupVT(out *os.File) error {
	_, err := out.WriteString("\033[?7l")
	return err
}

// Re-enables autowrap.
func restoreVT(out *os.File) error {
	_, err := out.WriteString("\033[?7h")
	return err
}
