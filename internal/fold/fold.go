// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package fold implements case-insensitive string comparison and search
// using simple Unicode case folding.
package fold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charlievieth/dataobject/internal/bytealg"
)

func clamp(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Compare returns an integer comparing two strings lexicographically
// ignoring case. The result will be 0 if s == t, -1 if s < t, and +1 if
// s > t.
func Compare(s, t string) int {
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sr == tr || lower(sr) == lower(tr) {
			continue
		}
		return clamp(int(lower(sr)) - int(lower(tr)))
	}
	return clamp(len(s) - len(t))

hasUnicode:
	s = s[i:]
	t = t[i:]
	for len(s) != 0 {
		// If t is exhausted s is the longer string.
		if len(t) == 0 {
			return 1
		}
		sr, n := decodeRune(s)
		tr, m := decodeRune(t)
		s = s[n:]
		t = t[m:]
		if tr == sr {
			continue
		}

		// Make sr < tr to simplify what follows.
		sign := 1
		if tr < sr {
			sign = -1
			tr, sr = sr, tr
		}
		if equalRune(sr, tr) {
			continue
		}
		return clamp(int(sr)-int(tr)) * sign
	}
	if len(t) == 0 {
		return 0
	}
	return -1
}

// invalidRune is added to invalid UTF-8 bytes so that each one decodes to
// a distinct value above unicode.MaxRune that only matches itself.
const invalidRune = unicode.MaxRune + 1

// decodeRune is like utf8.DecodeRuneInString except that an invalid byte b
// decodes to invalidRune+b. s must not be empty.
func decodeRune(s string) (rune, int) {
	if s[0] < utf8.RuneSelf {
		return rune(s[0]), 1
	}
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return invalidRune + rune(s[0]), 1
	}
	return r, n
}

// EqualFold reports whether s and t are equal under simple Unicode
// case-folding.
func EqualFold(s, t string) bool {
	return Compare(s, t) == 0
}

// equalRune reports whether sr and tr are equal under simple case folding.
func equalRune(sr, tr rune) bool {
	if sr == tr {
		return true
	}
	if tr < sr {
		tr, sr = sr, tr
	}
	// Fast check for ASCII.
	if tr < utf8.RuneSelf {
		return 'A' <= sr && sr <= 'Z' && tr == sr+'a'-'A'
	}

	// General case. SimpleFold(x) returns the next equivalent rune > x
	// or wraps around to smaller values.
	r := unicode.SimpleFold(sr)
	for r != sr && r < tr {
		r = unicode.SimpleFold(r)
	}
	return r == tr
}

// hasPrefix reports whether s begins with prefix ignoring case and returns
// the number of bytes of s that matched, which may differ from len(prefix).
func hasPrefix(s, prefix string) (int, bool) {
	i := 0
	for len(prefix) != 0 {
		if i >= len(s) {
			return 0, false
		}
		pr, m := decodeRune(prefix)
		sr, n := decodeRune(s[i:])
		if !equalRune(sr, pr) {
			return 0, false
		}
		prefix = prefix[m:]
		i += n
	}
	return i, true
}

// Index returns the index of the first instance of substr in s ignoring
// case, or -1 if substr is not present in s.
func Index(s, substr string) int {
	i, _ := IndexLen(s, substr)
	return i
}

// IndexLen is like Index but also returns the length in bytes of the
// matched text in s. The length may differ from len(substr) since the
// UTF-8 encodings of case-equivalent runes may differ in size ('k' and
// the Kelvin sign for example).
func IndexLen(s, substr string) (int, int) {
	n := len(substr)
	if n == 0 {
		return 0, 0
	}
	// Non-ASCII runes in s can fold to ASCII runes in substr so the
	// ASCII search is only valid when both strings are ASCII.
	if bytealg.IndexNonASCII(substr) == -1 && bytealg.IndexNonASCII(s) == -1 {
		if i := indexASCII(s, substr); i != -1 {
			return i, n
		}
		return -1, 0
	}
	return indexUnicode(s, substr)
}

func indexUnicode(s, substr string) (int, int) {
	r0, _ := decodeRune(substr)
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if equalRune(r, r0) {
			if n, ok := hasPrefix(s[i:], substr); ok {
				return i, n
			}
		}
		i += size
	}
	return -1, 0
}

// Contains reports whether substr is within s ignoring case.
func Contains(s, substr string) bool {
	return Index(s, substr) >= 0
}

// ReplaceAll returns a copy of s with all non-overlapping case-insensitive
// instances of old replaced by new, along with the number of replacements.
// The replacement text is inserted exactly as given. If old is empty s is
// returned unchanged.
func ReplaceAll(s, old, new string) (string, int) {
	if old == "" {
		return s, 0
	}
	var b strings.Builder
	count := 0
	start := 0
	for start < len(s) {
		i, n := IndexLen(s[start:], old)
		if i < 0 {
			break
		}
		if count == 0 {
			b.Grow(len(s))
		}
		b.WriteString(s[start : start+i])
		b.WriteString(new)
		start += i + n
		count++
	}
	if count == 0 {
		return s, 0
	}
	b.WriteString(s[start:])
	return b.String(), count
}
