package lined

import (
	"strings"
	"unicode/utf8"
)

// completionSeed returns the space-delimited token under the dot: the
// substring between the last space before the dot and the dot. The seed is
// delimited by spaces only, independent of the word-break set used by the
// word movement commands.
func completionSeed(buffer string, dot int) (begin int, seed string) {
	begin = strings.LastIndexByte(buffer[:dot], ' ') + 1
	return begin, buffer[begin:dot]
}

func (ed *Editor) complete() {
	if ed.completer == nil {
		return
	}
	begin, seed := completionSeed(ed.buf.Content, ed.buf.Dot)
	candidates := ed.completer(seed)
	switch len(candidates) {
	case 0:
		return
	case 1:
		ed.replaceSeed(begin, candidates[0])
	default:
		if lcp := longestCommonPrefix(candidates); len(lcp) > len(seed) {
			ed.replaceSeed(begin, lcp)
		} else {
			// No progress can be made; list the candidates below the line.
			ed.listing = candidates
		}
	}
}

// Replaces the text between begin and the dot, and places the dot after the
// replacement.
func (ed *Editor) replaceSeed(begin int, text string) {
	ed.buf = CodeBuffer{
		Content: ed.buf.Content[:begin] + text + ed.buf.Content[ed.buf.Dot:],
		Dot:     begin + len(text),
	}
}

// Computed rune-wise, so that the result never ends inside a multi-byte
// rune.
func longestCommonPrefix(candidates []string) string {
	lcp := candidates[0]
	for _, cand := range candidates[1:] {
		n := 0
		for n < len(lcp) && n < len(cand) {
			r1, w := utf8.DecodeRuneInString(lcp[n:])
			r2, _ := utf8.DecodeRuneInString(cand[n:])
			if r1 != r2 {
				break
			}
			n += w
		}
		lcp = lcp[:n]
	}
	return lcp
}
