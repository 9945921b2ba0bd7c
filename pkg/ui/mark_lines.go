package ui

// RuneStylesheet maps runes to stylings.
type RuneStylesheet map[rune]Styling

// MarkLines provides a way to construct a styled Text by separating the
// content and the styling.
//
// The arguments are groups of either
//
//   - a single string, giving an unstyled piece of text, or
//
//   - a string, a RuneStylesheet and another string, where the first string
//     gives the content, and the third string gives the style of each rune of
//     the content, interpreted with the stylesheet. A space in the style
//     string leaves the corresponding rune unstyled.
//
// For example, MarkLines("foo", stylesheet, "_-_") styles the first and third
// runes of "foo" with stylesheet['_'] and the second with stylesheet['-'].
func MarkLines(args ...interface{}) Text {
	var text Text
	for i := 0; i < len(args); i++ {
		line, ok := args[i].(string)
		if !ok {
			// Skip invalid argument.
			continue
		}
		if i+2 < len(args) {
			if stylesheet, ok := args[i+1].(RuneStylesheet); ok {
				if styles, ok := args[i+2].(string); ok {
					text = text.Concat(markLine(line, stylesheet, styles))
					i += 2
					continue
				}
			}
		}
		text = text.Concat(T(line))
	}
	return text
}

func markLine(line string, stylesheet RuneStylesheet, stylesString string) Text {
	styles := []rune(stylesString)
	var text Text
	i := 0
	for _, r := range line {
		var styling Styling
		if i < len(styles) && styles[i] != ' ' {
			styling = stylesheet[styles[i]]
		}
		text = text.Concat(T(string(r), styling))
		i++
	}
	return text
}
