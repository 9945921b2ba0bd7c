package ui

import (
	"testing"

	"src.lined.sh/pkg/tt"
)

func TestSegmentCountRune(t *testing.T) {
	seg := red("lorem")
	tt.Test(t, tt.Fn("Segment.CountRune", (*Segment).CountRune), tt.Table{
		Args(seg, 'l').Rets(1),
		Args(seg, 'o').Rets(1),
		Args(seg, '\n').Rets(0),
	})
}

func TestSegmentSplitByRune(t *testing.T) {
	tt.Test(t, tt.Fn("Segment.SplitByRune", (*Segment).SplitByRune), tt.Table{
		Args(red("lorem"), '\n').Rets([]*Segment{red("lorem")}),
		Args(red("lo\nrem"), '\n').Rets([]*Segment{red("lo"), red("rem")}),
	})
}

func TestSegmentVTString(t *testing.T) {
	testTextVTString(t, []textVTStringTest{
		{Text{&Segment{Text: "foo"}}, "\033[mfoo"},
		{Text{red("foo")}, "\033[;31mfoo\033[m"},
	})
}
