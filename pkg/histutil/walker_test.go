package histutil

import (
	"testing"

	"src.lined.sh/pkg/store/storedefs"
)

func TestWalker(t *testing.T) {
	w, err := NewWalker(NewMemStore("ls", "echo foo", "echo bar"))
	if err != nil {
		t.Fatalf("NewWalker -> err %v, want nil", err)
	}

	wantPrev := func(text string, seq int) {
		t.Helper()
		cmd, err := w.Prev()
		if cmd != (storedefs.Cmd{Text: text, Seq: seq}) || err != nil {
			t.Errorf("Prev -> (%v, %v), want ({%q %d}, nil)",
				cmd, err, text, seq)
		}
	}
	wantNext := func(text string, seq int) {
		t.Helper()
		cmd, err := w.Next()
		if cmd != (storedefs.Cmd{Text: text, Seq: seq}) || err != nil {
			t.Errorf("Next -> (%v, %v), want ({%q %d}, nil)",
				cmd, err, text, seq)
		}
	}
	wantPrevEnd := func() {
		t.Helper()
		if _, err := w.Prev(); err != ErrEndOfHistory {
			t.Errorf("Prev -> err %v, want %v", err, ErrEndOfHistory)
		}
	}
	wantNextEnd := func() {
		t.Helper()
		if _, err := w.Next(); err != ErrEndOfHistory {
			t.Errorf("Next -> err %v, want %v", err, ErrEndOfHistory)
		}
	}

	// Starting below the newest entry: Next already signals the end.
	wantNextEnd()

	// Walking to older entries.
	wantPrev("echo bar", 2)
	wantPrev("echo foo", 1)
	wantPrev("ls", 0)
	// Clamped at the oldest entry.
	wantPrevEnd()
	wantPrevEnd()
	if cmd, ok := w.Current(); !ok || cmd.Text != "ls" {
		t.Errorf("Current -> (%v, %v), want ({ls 0}, true)", cmd, ok)
	}

	// Walking back to newer entries.
	wantNext("echo foo", 1)
	wantNext("echo bar", 2)
	// Moving past the newest entry.
	wantNextEnd()
	if _, ok := w.Current(); ok {
		t.Errorf("Current -> ok after walking past the newest entry")
	}
}

func TestWalker_Empty(t *testing.T) {
	w, err := NewWalker(NewMemStore())
	if err != nil {
		t.Fatalf("NewWalker -> err %v, want nil", err)
	}
	if _, err := w.Prev(); err != ErrEndOfHistory {
		t.Errorf("Prev -> err %v, want %v", err, ErrEndOfHistory)
	}
	if _, err := w.Next(); err != ErrEndOfHistory {
		t.Errorf("Next -> err %v, want %v", err, ErrEndOfHistory)
	}
}
