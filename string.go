// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package dataobject

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/dataobject/internal/fold"
)

// String is a mutable value object holding a single string. The zero value
// is the empty string.
//
// Lengths and offsets are in bytes. A String must not be mutated
// concurrently; use Clone to give another owner an independent copy.
type String struct {
	value string
}

// NewString returns a String holding s.
func NewString(s string) *String { return &String{value: s} }

// Value returns the string held by s.
func (s *String) Value() string { return s.value }

// Set replaces the string held by s.
func (s *String) Set(v string) { s.value = v }

// Kind returns KindString.
func (s *String) Kind() Kind { return KindString }

// String returns the string held by s.
func (s *String) String() string { return s.value }

// Clone returns a copy of s that can be modified independently.
func (s *String) Clone() *String { return &String{value: s.value} }

// Equals reports whether other is a string value byte-for-byte equal to s.
// Values of any other kind are never equal.
func (s *String) Equals(other Value) bool {
	return other != nil && other.Kind() == KindString && s.value == other.String()
}

// EqualsString reports whether t is byte-for-byte equal to s.
func (s *String) EqualsString(t string) bool { return s.value == t }

// EqualsIgnoreCase is like Equals but compares under simple Unicode case
// folding.
func (s *String) EqualsIgnoreCase(other Value) bool {
	return other != nil && other.Kind() == KindString && fold.EqualFold(s.value, other.String())
}

// EqualsStringIgnoreCase is like EqualsString but compares under simple
// Unicode case folding.
func (s *String) EqualsStringIgnoreCase(t string) bool {
	return fold.EqualFold(s.value, t)
}

// Contains reports whether substr is within s. The empty string is
// contained in every String.
func (s *String) Contains(substr string) bool {
	return strings.Contains(s.value, substr)
}

// ContainsIgnoreCase reports whether substr is within s ignoring case.
func (s *String) ContainsIgnoreCase(substr string) bool {
	return fold.Contains(s.value, substr)
}

// Replace replaces all non-overlapping instances of search with replacement
// and returns the number of replacements. An empty search string matches
// nothing.
func (s *String) Replace(search, replacement string) int {
	if search == "" {
		return 0
	}
	n := strings.Count(s.value, search)
	if n != 0 {
		s.value = strings.Replace(s.value, search, replacement, n)
	}
	return n
}

// ReplaceEach calls Replace for each search string in order, each pass
// operating on the result of the previous one. The i'th search string is
// replaced by the i'th replacement, or by the empty string if replacement
// is shorter than search. It returns the total number of replacements.
func (s *String) ReplaceEach(search, replacement []string) int {
	n := 0
	for i, old := range search {
		var repl string
		if i < len(replacement) {
			repl = replacement[i]
		}
		n += s.Replace(old, repl)
	}
	return n
}

// ReplaceIgnoreCase is like Replace but matches search ignoring case.
// The replacement is inserted exactly as given.
func (s *String) ReplaceIgnoreCase(search, replacement string) int {
	v, n := fold.ReplaceAll(s.value, search, replacement)
	s.value = v
	return n
}

// ReplaceEachIgnoreCase is like ReplaceEach but matches ignoring case.
func (s *String) ReplaceEachIgnoreCase(search, replacement []string) int {
	n := 0
	for i, old := range search {
		var repl string
		if i < len(replacement) {
			repl = replacement[i]
		}
		n += s.ReplaceIgnoreCase(old, repl)
	}
	return n
}

// Match reports whether the delimited regular expression pattern matches s.
// On a match it returns the text of the leftmost match followed by the text
// of its capture groups. Groups that did not participate in the match are
// empty, trailing ones are omitted.
//
// If pattern is malformed the error is an *InvalidPatternError.
func (s *String) Match(pattern string) ([]string, bool, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, false, err
	}
	matches, ok := s.MatchRegexp(re)
	return matches, ok, nil
}

// MatchRegexp is like Match but uses a compiled regular expression.
func (s *String) MatchRegexp(re *regexp.Regexp) ([]string, bool) {
	loc := re.FindStringSubmatchIndex(s.value)
	if loc == nil {
		return nil, false
	}
	n := len(loc) / 2
	for n > 1 && loc[2*(n-1)] < 0 {
		n--
	}
	matches := make([]string, n)
	for i := range matches {
		if lo := loc[2*i]; lo >= 0 {
			matches[i] = s.value[lo:loc[2*i+1]]
		}
	}
	return matches, true
}

// ReplaceByPattern returns a copy of s with every match of the delimited
// regular expression pattern replaced by replacement. Inside replacement
// "$n", "${n}" and "\n" refer to the n'th capture group (0-99) and a
// backslash escapes a following backslash or dollar sign. s is not
// modified.
//
// If pattern is malformed the error is an *InvalidPatternError.
func (s *String) ReplaceByPattern(pattern, replacement string) (string, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s.value, translateReplacement(replacement)), nil
}

// ToLower returns s with all Unicode letters mapped to their lower case
// without language specific tailoring. s is not modified.
func (s *String) ToLower() string {
	return cases.Lower(language.Und).String(s.value)
}

// Substring returns the first count bytes of s, or all of s if it is
// shorter. A negative count omits -count bytes from the end of s. The
// result is ("", false) if that would omit more than all of s.
func (s *String) Substring(count int) (string, bool) {
	v := s.value
	switch {
	case count > len(v):
		return v, true
	case count >= 0:
		return v[:count], true
	case count < -len(v):
		return "", false
	}
	return v[:len(v)+count], true
}

// Len returns the number of bytes in s.
func (s *String) Len() int { return len(s.value) }

// RuneCount returns the number of runes in s.
func (s *String) RuneCount() int { return utf8.RuneCountInString(s.value) }

// HasPrefix reports whether s begins with prefix. Unlike strings.HasPrefix
// the empty prefix only matches the empty String.
func (s *String) HasPrefix(prefix string) bool {
	if prefix == "" {
		return s.value == ""
	}
	return strings.HasPrefix(s.value, prefix)
}

// HasSuffix reports whether s ends with suffix. Unlike strings.HasSuffix
// the empty suffix only matches the empty String.
func (s *String) HasSuffix(suffix string) bool {
	if suffix == "" {
		return s.value == ""
	}
	return strings.HasSuffix(s.value, suffix)
}
