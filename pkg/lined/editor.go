package lined

import (
	"src.lined.sh/pkg/histutil"
	"src.lined.sh/pkg/sys"
	"src.lined.sh/pkg/term"
	"src.lined.sh/pkg/ui"
)

// ResultKind identifies how a Read call was concluded.
type ResultKind int

const (
	// ResultOK indicates that the line was committed with Enter.
	ResultOK ResultKind = iota
	// ResultCancel indicates that the line was discarded with Ctrl-C.
	ResultCancel
	// ResultQuit indicates end of input (Ctrl-D on an empty line).
	ResultQuit
)

// Result is the outcome of a Read call.
type Result struct {
	// Code is the committed line. It is only set for ResultOK.
	Code string
	Kind ResultKind
}

// Editor is a line editor. It is not safe for concurrent use; a Read call
// owns the terminal until it returns.
type Editor struct {
	tty TTY

	buf CodeBuffer

	prompt      Prompt
	highlighter func(code string) ui.Text
	completer   func(seed string) []string
	history     histutil.Store
	wordBreaks  string

	// History browsing state. Non-nil while browsing.
	walker *histutil.Walker
	// The line that was being edited when browsing started.
	pending string

	// Completion candidates to list below the line on the next redraw.
	listing []string
}

// NewEditor creates a new Editor from the given TTY.
func NewEditor(tty TTY) *Editor {
	return &Editor{tty: tty, prompt: NewConstPrompt(nil), wordBreaks: WordBreaks}
}

// SetPrompt sets the prompt hook and returns ed itself.
func (ed *Editor) SetPrompt(p Prompt) *Editor {
	ed.prompt = p
	return ed
}

// SetHighlighter sets the highlight hook and returns ed itself. The hook must
// preserve the number of characters of the code; the editor falls back to
// plain text otherwise.
func (ed *Editor) SetHighlighter(f func(code string) ui.Text) *Editor {
	ed.highlighter = f
	return ed
}

// SetCompleter sets the completion hook and returns ed itself. The hook is
// called with the space-delimited token under the dot.
func (ed *Editor) SetCompleter(f func(seed string) []string) *Editor {
	ed.completer = f
	return ed
}

// SetHistory sets the history store and returns ed itself. Committed lines
// are added to the store; Up and Down browse it.
func (ed *Editor) SetHistory(s histutil.Store) *Editor {
	ed.history = s
	return ed
}

// SetWordBreaks sets the set of word-breaking runes used by the word movement
// and kill commands, and returns ed itself.
func (ed *Editor) SetWordBreaks(breaks string) *Editor {
	ed.wordBreaks = breaks
	return ed
}

// Read reads a line from the terminal. It sets up the terminal on entry and
// restores it before returning. It returns an error only when the terminal
// fails; decoding errors from unrecognized escape sequences are ignored.
func (ed *Editor) Read() (Result, error) {
	restore, err := ed.tty.Setup()
	if err != nil {
		return Result{Kind: ResultCancel}, err
	}
	defer restore()
	defer ed.tty.CloseReader()

	defer func() {
		if r := recover(); r != nil {
			logger.Println("editor panicked:", r)
			logger.Println(sys.DumpStack())
			panic(r)
		}
	}()

	sigCh := ed.tty.NotifySignals()
	defer ed.tty.StopSignals()

	ed.buf = CodeBuffer{}
	ed.walker = nil
	ed.listing = nil
	ed.tty.ResetBuffer()
	ed.redraw(false)

	for {
		event, err := ed.tty.ReadEvent()
		if err != nil {
			if err == term.ErrStopped {
				ed.finalRedraw()
				return Result{Kind: ResultCancel}, err
			}
			if term.IsReadErrorRecoverable(err) {
				logger.Println("ignored input error:", err)
				continue
			}
			ed.finalRedraw()
			return Result{Kind: ResultCancel}, err
		}

		// A window size change while we were waiting for input requires a
		// full redraw with the new width.
		full := false
	drain:
		for {
			select {
			case sig := <-sigCh:
				if sig == sys.SIGWINCH {
					full = true
				}
			default:
				break drain
			}
		}

		if key, ok := event.(term.KeyEvent); ok {
			result, done := ed.handleKey(ui.Key(key))
			if done {
				ed.finalRedraw()
				return result, nil
			}
		}
		ed.redraw(full)
	}
}

// Buffer returns the current state of the code buffer.
func (ed *Editor) Buffer() CodeBuffer {
	return ed.buf
}

func (ed *Editor) handleKey(k ui.Key) (Result, bool) {
	switch k {
	case ui.K(ui.Up), ui.K('P', ui.Ctrl):
		ed.historyUp()
		return Result{}, false
	case ui.K(ui.Down), ui.K('N', ui.Ctrl):
		ed.historyDown()
		return Result{}, false
	}
	// Any other key stops history browsing; the entry being shown stays as
	// the content being edited.
	ed.walker = nil

	switch k {
	case ui.K(ui.Enter):
		code := ed.buf.Content
		if code != "" && ed.history != nil {
			if _, err := ed.history.AddCmd(code); err != nil {
				logger.Println("failed to add command to history:", err)
			}
		}
		return Result{Code: code, Kind: ResultOK}, true
	case ui.K('C', ui.Ctrl):
		return Result{Kind: ResultCancel}, true
	case ui.K('D', ui.Ctrl):
		if ed.buf.Content == "" {
			return Result{Kind: ResultQuit}, true
		}
		killRuneRight(&ed.buf)
	case ui.K(ui.Backspace), ui.K('H', ui.Ctrl):
		killRuneLeft(&ed.buf)
	case ui.K(ui.Delete):
		killRuneRight(&ed.buf)
	case ui.K(ui.Left):
		ed.buf.Dot = moveDotLeft(ed.buf.Content, ed.buf.Dot)
	case ui.K(ui.Right):
		ed.buf.Dot = moveDotRight(ed.buf.Content, ed.buf.Dot)
	case ui.K(ui.Home), ui.K('A', ui.Ctrl):
		ed.buf.Dot = moveDotSOL(ed.buf.Content, ed.buf.Dot)
	case ui.K(ui.End), ui.K('E', ui.Ctrl):
		ed.buf.Dot = moveDotEOL(ed.buf.Content, ed.buf.Dot)
	case ui.K(ui.Left, ui.Ctrl), ui.K('b', ui.Alt):
		ed.buf.Dot = moveDotLeftWord(ed.buf.Content, ed.buf.Dot, ed.wordBreaks)
	case ui.K(ui.Right, ui.Ctrl), ui.K('f', ui.Alt):
		ed.buf.Dot = moveDotRightWord(ed.buf.Content, ed.buf.Dot, ed.wordBreaks)
	case ui.K('W', ui.Ctrl), ui.K(ui.Backspace, ui.Alt):
		killWordLeft(&ed.buf, ed.wordBreaks)
	case ui.K('d', ui.Alt):
		killWordRight(&ed.buf, ed.wordBreaks)
	case ui.K('U', ui.Ctrl):
		killLineLeft(&ed.buf)
	case ui.K('K', ui.Ctrl):
		killLineRight(&ed.buf)
	case ui.K('L', ui.Ctrl):
		ed.clearScreen()
	case ui.K(ui.Tab):
		ed.complete()
	default:
		if k.Mod == 0 && k.Rune >= 0x20 && k.Rune != 0x7f {
			ed.buf.InsertAtDot(string(k.Rune))
		}
		// Unbound keys are ignored.
	}
	return Result{}, false
}

func (ed *Editor) historyUp() {
	if ed.history == nil {
		return
	}
	if ed.walker == nil {
		w, err := histutil.NewWalker(ed.history)
		if err != nil {
			logger.Println("failed to walk history:", err)
			return
		}
		ed.walker = w
		ed.pending = ed.buf.Content
	}
	cmd, err := ed.walker.Prev()
	if err != nil {
		// Clamped at the oldest entry.
		return
	}
	ed.buf = CodeBuffer{Content: cmd.Text, Dot: len(cmd.Text)}
}

func (ed *Editor) historyDown() {
	if ed.walker == nil {
		return
	}
	cmd, err := ed.walker.Next()
	if err != nil {
		// Past the newest entry: restore the pending line and stop browsing.
		ed.buf = CodeBuffer{Content: ed.pending, Dot: len(ed.pending)}
		ed.walker = nil
		return
	}
	ed.buf = CodeBuffer{Content: cmd.Text, Dot: len(cmd.Text)}
}
