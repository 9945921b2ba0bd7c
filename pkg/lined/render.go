package lined

import (
	"unicode/utf8"

	"src.lined.sh/pkg/term"
	"src.lined.sh/pkg/ui"
)

// Renders the current state of the editor into a notes buffer (completion
// listing, may be nil) and a main buffer (prompt plus code, with the dot at
// the cursor position).
func (ed *Editor) render(height, width int) (bufNotes, bufMain *term.Buffer) {
	bb := term.NewBufferBuilder(width)
	bb.WriteStyled(ed.prompt.Get())

	code := ui.T(ed.buf.Content)
	if ed.highlighter != nil {
		if styled := ed.highlighter(ed.buf.Content); validHighlight(ed.buf.Content, styled) {
			code = styled
		}
	}
	parts := code.Partition(ed.buf.Dot)
	bb.WriteStyled(parts[0]).SetDotHere().WriteStyled(parts[1])

	buf := bb.Buffer()
	if height > 0 && len(buf.Lines) > height {
		// Keep the lines around the dot visible.
		low := buf.Dot.Line - height + 1
		if low < 0 {
			low = 0
		}
		buf.TrimToLines(low, low+height)
	}

	var notes *term.Buffer
	if len(ed.listing) > 0 {
		nb := term.NewBufferBuilder(width)
		for i, cand := range ed.listing {
			if i > 0 {
				nb.Newline()
			}
			nb.Write(cand)
		}
		notes = nb.Buffer()
	}
	return notes, buf
}

// A highlighter must preserve the number of characters of the code;
// otherwise the dot can no longer be placed and the hook is ignored.
func validHighlight(code string, t ui.Text) bool {
	n := 0
	for _, seg := range t {
		n += utf8.RuneCountInString(seg.Text)
	}
	return n == utf8.RuneCountInString(code)
}

func (ed *Editor) redraw(full bool) {
	height, width := ed.tty.Size()
	bufNotes, bufMain := ed.render(height, width)
	ed.listing = nil
	err := ed.tty.UpdateBuffer(bufNotes, bufMain, full)
	if err != nil {
		logger.Println("failed to update terminal buffer:", err)
	}
}

// Clears the screen and repaints the current state from the top left corner.
func (ed *Editor) clearScreen() {
	ed.tty.HideCursor()
	ed.tty.ClearScreen()
	ed.redraw(true)
	ed.tty.ShowCursor()
}

// Renders the final state of the buffer with the cursor on a fresh line, so
// that the program output after Read starts on its own line.
func (ed *Editor) finalRedraw() {
	_, width := ed.tty.Size()
	bb := term.NewBufferBuilder(width)
	bb.WriteStyled(ed.prompt.Get())
	bb.Write(ed.buf.Content)
	bb.Newline()
	bb.SetDotHere()
	err := ed.tty.UpdateBuffer(nil, bb.Buffer(), false)
	if err != nil {
		logger.Println("failed to update terminal buffer:", err)
	}
	ed.tty.ResetBuffer()
}
