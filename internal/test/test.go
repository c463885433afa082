// Package test contains the test tables shared by the case-insensitive
// search packages.
package test

import (
	"strings"
	"testing"
)

type IndexTest struct {
	S   string
	Sep string
	Out int
}

// IndexTests are case-insensitive Index tests. Most are from the standard
// library's strings/strings_test.go.
var IndexTests = []IndexTest{
	{"", "", 0},
	{"", "a", -1},
	{"", "foo", -1},
	{"fo", "foo", -1},
	{"foo", "foo", 0},
	{"oofofoofooo", "f", 2},
	{"oofofoofooo", "foo", 4},
	{"barfoobarfoo", "foo", 3},
	{"foo", "", 0},
	{"foo", "o", 1},
	{"abcABCabc", "A", 0},
	{"abcVBCabc", "V", 3},
	{"jrzm6jjhorimglljrea4w3rlgosts0w2gia17hno2td4qd1jz", "jz", 47},
	{"ekkuk5oft4eq0ocpacknhwouic1uua46unx12l37nioq9wbpnocqks6", "ks6", 52},
	{"999f2xmimunbuyew5vrkla9cpwhmxan8o98ec", "98ec", 33},
	// cases with one byte strings
	{"x", "a", -1},
	{"x", "x", 0},
	{"abc", "a", 0},
	{"abc", "b", 1},
	{"abc", "c", 2},
	{"abc", "x", -1},
	{"{[", "[", 1},
	{"bbbbbbbbbbbbbbbbbbBb", "b", 0},
	{strings.Repeat("x", 25) + "A", "a", 25},
	// short strings
	{"", "ab", -1},
	{"bc", "ab", -1},
	{"ab", "ab", 0},
	{"xab", "ab", 1},
	{"xab"[:2], "ab", -1},
	{"xbc", "abc", -1},
	{"xabc", "abc", 1},
	{"xabc"[:3], "abc", -1},
	{"xabxc", "abc", -1},
	{"xabcd", "abcd", 1},
	{"xabcqxq", "abcqq", -1},
	{"x0123456x01234567", "01234567", 9},
	{"x012345678x0123456789", "0123456789", 11},
	{"x0123456789012345678x01234567890123456789", "01234567890123456789", 21},
	// fallback to brute force
	{"oxoxoxoxoxoxoxoxoxoxoxoy", "oy", 22},
	{"oxoxoxoxoxoxoxoxoxoxoxox", "oy", -1},
	// case
	{"xABC", "abc", 1},
	{"xabc", "ABC", 1},
	{"FOOBAR", "ooba", 1},
	{"fooBARfoo", "bar", 3},
	// unicode
	{"αβδ", "ΑΒΔ", 0},
	{"xαβδ", "ΒΔ", 3},
	{"αβδ", "ΑΓ", -1},
	{"xſ", "S", 1},
	{"x\u212a", "k", 1}, // Kelvin sign
	{"ΑΔΕΛΦΟΣΎΝΗΣ", "αδελφοσύνης", 0},
	// invalid UTF-8 only matches the same byte
	{"a\xffb", "\xffB", 1},
	{"a\xfeb", "\xff", -1},
	{"\xfe\xff", "\xFF", 1},
}

type CompareTest struct {
	S, T string
	Out  int
}

var CompareTests = []CompareTest{
	{"", "", 0},
	{"a", "a", 0},
	{"a", "ab", -1},
	{"ab", "a", 1},
	{"A", "b", -1},
	{"B", "a", 1},
	{"123abc", "123ABC", 0},
	{"αβδ", "ΑΒΔ", 0},
	{"αβδa", "ΑΒΔ", 1},
	{"αβδ", "ΑΒΔa", -1},
	{"αβa", "ΑΒΔ", -1},
	{"αβδ", "ΑΒa", 1},
	{"s", "ſ", 0},
	{"k", "\u212a", 0},
	{"\xfe", "\xff", -1},
	{"a\xffb", "A\xffB", 0},
	{"\xff", "\ufffd", 1},
}

// RunIndexTests runs fn against tests and reports any mismatches under name.
func RunIndexTests(t *testing.T, fn func(s, sep string) int, name string, tests []IndexTest) {
	t.Helper()
	for _, test := range tests {
		actual := fn(test.S, test.Sep)
		if actual != test.Out {
			t.Errorf("%s(%q, %q) = %v; want: %v", name, test.S, test.Sep, actual, test.Out)
		}
	}
}
