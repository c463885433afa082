package dataobject

import (
	"math"
	"strings"
	"testing"
	"testing/quick"
)

func TestEquals(t *testing.T) {
	tests := []struct {
		s     string
		other Value
		out   bool
	}{
		{"", NewString(""), true},
		{"abc", NewString("abc"), true},
		{"abc", NewString("ABC"), false},
		{"abc", NewString("abcd"), false},
		{"42", NewInteger(42), false},
		{"abc", nil, false},
	}
	for _, test := range tests {
		got := NewString(test.s).Equals(test.other)
		if got != test.out {
			t.Errorf("NewString(%q).Equals(%v) = %t; want: %t", test.s, test.other, got, test.out)
		}
	}
}

func TestEqualsProperty(t *testing.T) {
	fn := func(s string) bool {
		v := NewString(s)
		return v.EqualsString(s) && v.Equals(NewString(s)) && v.String() == s &&
			!v.Equals(NewInteger(len(s)))
	}
	if err := quick.Check(fn, nil); err != nil {
		t.Error(err)
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	tests := []struct {
		s, t string
		out  bool
	}{
		{"", "", true},
		{"ABC", "abc", true},
		{"abc", "ABD", false},
		{"αβδ", "ΑΒΔ", true},
		{"straße", "STRASSE", false}, // no full case folding
		{"k", "\u212a", true},
		{"a\xfeb", "a\xffb", false},
		{"a\xffb", "A\xffB", true},
	}
	for _, test := range tests {
		v := NewString(test.s)
		if got := v.EqualsStringIgnoreCase(test.t); got != test.out {
			t.Errorf("NewString(%q).EqualsStringIgnoreCase(%q) = %t; want: %t", test.s, test.t, got, test.out)
		}
		if got := v.EqualsIgnoreCase(NewString(test.t)); got != test.out {
			t.Errorf("NewString(%q).EqualsIgnoreCase(%q) = %t; want: %t", test.s, test.t, got, test.out)
		}
	}
	if NewString("ABC").EqualsString("abc") {
		t.Error(`NewString("ABC").EqualsString("abc") = true; want: false`)
	}
	if NewString("1").EqualsIgnoreCase(NewInteger(1)) {
		t.Error(`NewString("1").EqualsIgnoreCase(NewInteger(1)) = true; want: false`)
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		s, substr string
		out, fold bool
	}{
		{"abc", "", true, true},
		{"", "", true, true},
		{"", "a", false, false},
		{"abc", "bc", true, true},
		{"abc", "BC", false, true},
		{"SeaFood", "foo", false, true},
		{"ΑΔΕΛΦΟΣΎΝΗΣ", "αδελφοσύνης", false, true},
		{"abc", "abcd", false, false},
		{"a\xfeb", "\xff", false, false},
		{"a\xffB", "\xffb", false, true},
	}
	for _, test := range tests {
		v := NewString(test.s)
		if got := v.Contains(test.substr); got != test.out {
			t.Errorf("NewString(%q).Contains(%q) = %t; want: %t", test.s, test.substr, got, test.out)
		}
		if got := v.ContainsIgnoreCase(test.substr); got != test.fold {
			t.Errorf("NewString(%q).ContainsIgnoreCase(%q) = %t; want: %t", test.s, test.substr, got, test.fold)
		}
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		in, search, repl string
		out              string
		count            int
	}{
		{"hello", "l", "L", "heLLo", 2},
		{"hello", "z", "q", "hello", 0},
		{"hello", "", "q", "hello", 0},
		{"aaaa", "aa", "b", "bb", 2},
		{"aaa", "aa", "b", "ba", 1},
		{"Hello hello", "hello", "bye", "Hello bye", 1},
		{"", "a", "b", "", 0},
	}
	for _, test := range tests {
		v := NewString(test.in)
		n := v.Replace(test.search, test.repl)
		if v.Value() != test.out || n != test.count {
			t.Errorf("Replace(%q, %q) on %q = %q, %d; want: %q, %d",
				test.search, test.repl, test.in, v.Value(), n, test.out, test.count)
		}
	}
}

func TestReplaceIgnoreCase(t *testing.T) {
	tests := []struct {
		in, search, repl string
		out              string
		count            int
	}{
		{"Hello hello", "HELLO", "bye", "bye bye", 2},
		{"hello", "Z", "q", "hello", 0},
		{"hello", "", "q", "hello", 0},
		{"FooBar", "bar", "Baz", "FooBaz", 1},
		{"ΑΒΓ", "β", "b", "ΑbΓ", 1},
		{"a\xfeb", "\xff", "X", "a\xfeb", 0},
		{"a\xffB\xfe", "\xffb", "X", "aX\xfe", 1},
	}
	for _, test := range tests {
		v := NewString(test.in)
		n := v.ReplaceIgnoreCase(test.search, test.repl)
		if v.Value() != test.out || n != test.count {
			t.Errorf("ReplaceIgnoreCase(%q, %q) on %q = %q, %d; want: %q, %d",
				test.search, test.repl, test.in, v.Value(), n, test.out, test.count)
		}
	}
}

func TestReplaceEach(t *testing.T) {
	tests := []struct {
		in           string
		search, repl []string
		out          string
		count        int
		fold         bool
	}{
		{"ab", []string{"a", "b"}, []string{"b", "c"}, "cc", 3, false},
		{"abc", []string{"a", "c"}, []string{"x"}, "xb", 2, false},
		{"abc", nil, []string{"x"}, "abc", 0, false},
		{"abc", []string{"", "b"}, []string{"x", "y"}, "ayc", 1, false},
		{"ABC", []string{"a", "c"}, []string{"x", "z"}, "xBz", 2, true},
		{"ABC", []string{"a", "c"}, []string{"x", "z"}, "ABC", 0, false},
	}
	for _, test := range tests {
		v := NewString(test.in)
		var n int
		if test.fold {
			n = v.ReplaceEachIgnoreCase(test.search, test.repl)
		} else {
			n = v.ReplaceEach(test.search, test.repl)
		}
		if v.Value() != test.out || n != test.count {
			t.Errorf("ReplaceEach(%q, %q) on %q (fold: %t) = %q, %d; want: %q, %d",
				test.search, test.repl, test.in, test.fold, v.Value(), n, test.out, test.count)
		}
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"ABC", "abc"},
		{"Hello, World!", "hello, world!"},
		{"ΑΒΓ", "αβγ"},
		{"ÀÉÎ", "àéî"},
	}
	for _, test := range tests {
		v := NewString(test.in)
		if got := v.ToLower(); got != test.out {
			t.Errorf("NewString(%q).ToLower() = %q; want: %q", test.in, got, test.out)
		}
		if v.Value() != test.in {
			t.Errorf("ToLower modified value: %q; want: %q", v.Value(), test.in)
		}
	}
}

func TestSubstring(t *testing.T) {
	tests := []struct {
		in    string
		count int
		out   string
		ok    bool
	}{
		{"hello", 3, "hel", true},
		{"hi", 100, "hi", true},
		{"hello", 0, "", true},
		{"", 0, "", true},
		{"", 3, "", true},
		{"hello", -2, "hel", true},
		{"hello", -5, "", true},
		{"hi", -10, "", false},
		{"hi", math.MinInt, "", false},
	}
	for _, test := range tests {
		out, ok := NewString(test.in).Substring(test.count)
		if out != test.out || ok != test.ok {
			t.Errorf("NewString(%q).Substring(%d) = %q, %t; want: %q, %t",
				test.in, test.count, out, ok, test.out, test.ok)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		in    string
		bytes int
		runes int
	}{
		{"", 0, 0},
		{"abc", 3, 3},
		{"αβδ", 6, 3},
		{"a\xffb", 3, 3},
	}
	for _, test := range tests {
		v := NewString(test.in)
		if n := v.Len(); n != test.bytes {
			t.Errorf("NewString(%q).Len() = %d; want: %d", test.in, n, test.bytes)
		}
		if n := v.RuneCount(); n != test.runes {
			t.Errorf("NewString(%q).RuneCount() = %d; want: %d", test.in, n, test.runes)
		}
	}
}

func TestHasPrefixSuffix(t *testing.T) {
	tests := []struct {
		s, affix       string
		prefix, suffix bool
	}{
		{"abc", "", false, false},
		{"", "", true, true},
		{"", "a", false, false},
		{"abc", "a", true, false},
		{"abc", "c", false, true},
		{"abc", "abc", true, true},
		{"abc", "abcd", false, false},
		{"abc", "A", false, false},
	}
	for _, test := range tests {
		v := NewString(test.s)
		if got := v.HasPrefix(test.affix); got != test.prefix {
			t.Errorf("NewString(%q).HasPrefix(%q) = %t; want: %t", test.s, test.affix, got, test.prefix)
		}
		if got := v.HasSuffix(test.affix); got != test.suffix {
			t.Errorf("NewString(%q).HasSuffix(%q) = %t; want: %t", test.s, test.affix, got, test.suffix)
		}
	}
}

func TestClone(t *testing.T) {
	v := NewString("abc")
	c := v.Clone()
	c.Replace("b", "x")
	if v.Value() != "abc" {
		t.Errorf("original modified by clone: %q", v.Value())
	}
	if c.Value() != "axc" {
		t.Errorf("clone = %q; want: %q", c.Value(), "axc")
	}
}

func TestZeroValue(t *testing.T) {
	var v String
	if v.Value() != "" || !v.HasPrefix("") || v.Len() != 0 {
		t.Errorf("zero String = %q; want empty", v.Value())
	}
	v.Set(strings.Repeat("a", 3))
	if !v.EqualsString("aaa") {
		t.Errorf("Set: got %q; want: %q", v.Value(), "aaa")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
		name string
	}{
		{NewString("a"), KindString, "String"},
		{NewInteger(1), KindInteger, "Integer"},
	}
	for _, test := range tests {
		if k := test.v.Kind(); k != test.kind || k.String() != test.name {
			t.Errorf("%v.Kind() = %v; want: %v", test.v, k, test.name)
		}
	}
	if s := Kind(9).String(); s != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q; want: %q", s, "Kind(9)")
	}
}
