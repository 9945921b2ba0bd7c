package lined

import (
	"testing"

	"src.lined.sh/pkg/tt"
)

func TestCompletionSeed(t *testing.T) {
	tt.Test(t, tt.Fn("completionSeed", completionSeed), tt.Table{
		Args("", 0).Rets(0, ""),
		Args("foo", 3).Rets(0, "foo"),
		Args("foo", 1).Rets(0, "f"),
		Args("echo foo", 8).Rets(5, "foo"),
		Args("echo foo", 5).Rets(5, ""),
		// Only spaces delimit the seed; word-breaking runes do not.
		Args("echo a/b", 8).Rets(5, "a/b"),
	})
}

func TestLongestCommonPrefix(t *testing.T) {
	tt.Test(t, tt.Fn("longestCommonPrefix", longestCommonPrefix), tt.Table{
		Args([]string{"foo"}).Rets("foo"),
		Args([]string{"foobar", "foobaz"}).Rets("fooba"),
		Args([]string{"foo", "bar"}).Rets(""),
		Args([]string{"foo", "foobar"}).Rets("foo"),
		// Never cuts a multi-byte rune in half.
		Args([]string{"好x", "好y"}).Rets("好"),
	})
}
