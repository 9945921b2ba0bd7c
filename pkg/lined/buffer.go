package lined

import (
	"strings"
	"unicode/utf8"
)

// WordBreaks is the default set of word-breaking runes.
const WordBreaks = "-_=+[]{}()<>,./\\`'\";:!@#$%^&*?|~ "

// CodeBuffer represents the state of the line being edited.
type CodeBuffer struct {
	// Content of the buffer.
	Content string
	// Position of the dot (more commonly known as the cursor), as a byte
	// index into Content. It is always on a rune boundary.
	Dot int
}

// InsertAtDot inserts text at the dot and places the dot after it.
func (c *CodeBuffer) InsertAtDot(text string) {
	*c = CodeBuffer{
		Content: c.Content[:c.Dot] + text + c.Content[c.Dot:],
		Dot:     c.Dot + len(text),
	}
}

// The move functions all return a new dot; they never fail, and out-of-range
// requests stay where they are.

func moveDotLeft(buffer string, dot int) int {
	_, w := utf8.DecodeLastRuneInString(buffer[:dot])
	return dot - w
}

func moveDotRight(buffer string, dot int) int {
	_, w := utf8.DecodeRuneInString(buffer[dot:])
	return dot + w
}

func moveDotSOL(buffer string, dot int) int {
	return strings.LastIndexByte(buffer[:dot], '\n') + 1
}

func moveDotEOL(buffer string, dot int) int {
	if i := strings.IndexByte(buffer[dot:], '\n'); i != -1 {
		return dot + i
	}
	return len(buffer)
}

// Moves the dot to the beginning of the word it is in or after, skipping any
// word-breaking runes directly to its left first.
func moveDotLeftWord(buffer string, dot int, breaks string) int {
	isBreak := func(r rune) bool { return strings.ContainsRune(breaks, r) }
	left := strings.TrimRightFunc(buffer[:dot], isBreak)
	left = strings.TrimRightFunc(left,
		func(r rune) bool { return !isBreak(r) })
	return len(left)
}

// Moves the dot past the end of the next word, skipping any word-breaking
// runes directly to its right first.
func moveDotRightWord(buffer string, dot int, breaks string) int {
	isBreak := func(r rune) bool { return strings.ContainsRune(breaks, r) }
	right := strings.TrimLeftFunc(buffer[dot:], isBreak)
	right = strings.TrimLeftFunc(right,
		func(r rune) bool { return !isBreak(r) })
	return len(buffer) - len(right)
}

// The kill functions remove the text between the dot and the position the
// corresponding move function would move the dot to.

func killLeft(c *CodeBuffer, newDot int) {
	*c = CodeBuffer{
		Content: c.Content[:newDot] + c.Content[c.Dot:],
		Dot:     newDot,
	}
}

func killRight(c *CodeBuffer, end int) {
	c.Content = c.Content[:c.Dot] + c.Content[end:]
}

func killRuneLeft(c *CodeBuffer)  { killLeft(c, moveDotLeft(c.Content, c.Dot)) }
func killRuneRight(c *CodeBuffer) { killRight(c, moveDotRight(c.Content, c.Dot)) }

func killWordLeft(c *CodeBuffer, breaks string) {
	killLeft(c, moveDotLeftWord(c.Content, c.Dot, breaks))
}

func killWordRight(c *CodeBuffer, breaks string) {
	killRight(c, moveDotRightWord(c.Content, c.Dot, breaks))
}

func killLineLeft(c *CodeBuffer)  { killLeft(c, moveDotSOL(c.Content, c.Dot)) }
func killLineRight(c *CodeBuffer) { killRight(c, moveDotEOL(c.Content, c.Dot)) }
