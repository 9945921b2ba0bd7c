package ui

import (
	"strconv"
	"strings"
)

// Style specifies how something (mostly a string) shall be displayed.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underlined bool
	Blink      bool
	Inverse    bool
}

// SGR returns SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Italic, "3")
	addIf(s.Underlined, "4")
	addIf(s.Blink, "5")
	addIf(s.Inverse, "7")
	if s.Foreground != nil {
		sgr = append(sgr, s.Foreground.fgSGR())
	}
	if s.Background != nil {
		sgr = append(sgr, s.Background.bgSGR())
	}

	return strings.Join(sgr, ";")
}

var sgrStyling = map[int]Styling{
	1: Bold,
	2: Dim,
	3: Italic,
	4: Underlined,
	5: Blink,
	7: Inverse,
}

// StyleFromStyling builds a Style from a Styling.
func StyleFromStyling(s Styling) Style {
	var ret Style
	s.transform(&ret)
	return ret
}

// StyleFromSGR builds a Style from an SGR sequence.
func StyleFromSGR(s string) Style {
	return StyleFromStyling(StylingFromSGR(s))
}

// StylingFromSGR builds a Styling from an SGR sequence.
func StylingFromSGR(s string) Styling {
	style := jointStyling{}
	codes := getSGRCodes(s)
	for len(codes) > 0 {
		code := codes[0]
		consume := 1

		switch {
		case sgrStyling[code] != nil:
			style = append(style, sgrStyling[code])
		case 30 <= code && code <= 37:
			style = append(style, setForeground{ansiColor(code - 30)})
		case 40 <= code && code <= 47:
			style = append(style, setBackground{ansiColor(code - 40)})
		case 90 <= code && code <= 97:
			style = append(style, setForeground{ansiBrightColor(code - 90)})
		case 100 <= code && code <= 107:
			style = append(style, setBackground{ansiBrightColor(code - 100)})
		case code == 38 && len(codes) >= 3 && codes[1] == 5:
			style = append(style, setForeground{xterm256Color(codes[2])})
			consume = 3
		case code == 48 && len(codes) >= 3 && codes[1] == 5:
			style = append(style, setBackground{xterm256Color(codes[2])})
			consume = 3
		case code == 38 && len(codes) >= 5 && codes[1] == 2:
			style = append(style, setForeground{
				trueColor{uint8(codes[2]), uint8(codes[3]), uint8(codes[4])}})
			consume = 5
		case code == 48 && len(codes) >= 5 && codes[1] == 2:
			style = append(style, setBackground{
				trueColor{uint8(codes[2]), uint8(codes[3]), uint8(codes[4])}})
			consume = 5
		default:
			// Unsupported code; skip.
		}

		codes = codes[consume:]
	}
	return style
}

func getSGRCodes(s string) []int {
	var codes []int
	for _, part := range strings.Split(s, ";") {
		code, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}
