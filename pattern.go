// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package dataobject

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// WARN: DEV ONLY
const debug = false

var logger = newLogger()

func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if debug {
		w = os.Stderr
	}
	return log.New(w, "dataobject: ", log.Lshortfile)
}

// Errors wrapped by InvalidPatternError when a pattern is malformed.
var (
	ErrEmptyPattern    = errors.New("empty pattern")
	ErrNoDelimiter     = errors.New("delimiter must not be alphanumeric, backslash, or NUL")
	ErrNoEndDelimiter  = errors.New("no ending delimiter")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// An InvalidPatternError describes a pattern that could not be compiled.
type InvalidPatternError struct {
	Pattern string // the pattern as given
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("dataobject: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// patternCacheSize matches the size of PCRE's compiled regex cache.
const patternCacheSize = 4096

var patternCache = newPatternCache()

func newPatternCache() *lru.Cache[string, *regexp.Regexp] {
	c, err := lru.New[string, *regexp.Regexp](patternCacheSize)
	if err != nil {
		panic(err) // only returned for a non-positive size
	}
	return c
}

// compilePattern compiles the delimited pattern. Successfully compiled
// patterns are cached.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Get(pattern); ok {
		return re, nil
	}
	expr, err := translatePattern(pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	logger.Printf("compiled pattern %q as %q", pattern, expr)
	patternCache.Add(pattern, re)
	return re, nil
}

func isAlnum(c byte) bool {
	return '0' <= c && c <= '9' || 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func closingDelimiter(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	}
	return c
}

// translatePattern converts a delimited pattern with trailing modifiers
// into a regexp expression.
func translatePattern(pattern string) (string, error) {
	p := strings.TrimLeft(pattern, " \t\n\v\f\r")
	if p == "" {
		return "", ErrEmptyPattern
	}
	start := p[0]
	if isAlnum(start) || start == '\\' || start == 0 {
		return "", ErrNoDelimiter
	}
	end := closingDelimiter(start)

	// Find the closing delimiter, bracket style delimiters may nest.
	depth := 1
	i := 1
	for ; i < len(p); i++ {
		c := p[i]
		if c == '\\' {
			i++
			continue
		}
		if c == end {
			if depth--; depth == 0 {
				break
			}
		} else if c == start {
			depth++
		}
	}
	if i >= len(p) {
		return "", ErrNoEndDelimiter
	}
	expr := p[1:i]

	var flags []byte
	anchored := false
	for j := i + 1; j < len(p); j++ {
		switch m := p[j]; m {
		case 'i', 'm', 's', 'U':
			if bytes.IndexByte(flags, m) == -1 {
				flags = append(flags, m)
			}
		case 'A':
			anchored = true
		case 'u', 'D':
			// Expressions are always UTF-8. RE2 has no lookahead so
			// '$' without 'm' always behaves as if 'D' were set.
		case ' ', '\n', '\r':
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownModifier, m)
		}
	}
	if anchored {
		expr = `\A(?:` + expr + `)`
	}
	if len(flags) != 0 {
		expr = "(?" + string(flags) + ")" + expr
	}
	return expr, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// backref parses a backreference ("\n", "$n" or "${n}", n is one or two
// digits) at the start of s and returns the group number and the number
// of bytes consumed.
func backref(s string) (string, int, bool) {
	if len(s) < 2 {
		return "", 0, false
	}
	i := 1
	brace := s[0] == '$' && s[1] == '{'
	if brace {
		i++
	}
	j := i
	for j < len(s) && j-i < 2 && isDigit(s[j]) {
		j++
	}
	if j == i {
		return "", 0, false
	}
	n := s[i:j]
	if brace {
		if j >= len(s) || s[j] != '}' {
			return "", 0, false
		}
		j++
	}
	return n, j, true
}

// translateReplacement converts a replacement string using "\n", "$n" and
// "${n}" backreferences into a template for regexp.Regexp.Expand.
// A backslash escapes a following backslash or dollar sign.
func translateReplacement(repl string) string {
	if strings.IndexByte(repl, '$') == -1 && strings.IndexByte(repl, '\\') == -1 {
		return repl
	}
	b := make([]byte, 0, len(repl)+8)
	var last byte
	for i := 0; i < len(repl); {
		c := repl[i]
		if c == '\\' || c == '$' {
			if last == '\\' {
				b = b[:len(b)-1]
				if c == '$' {
					b = append(b, "$$"...)
				} else {
					b = append(b, '\\')
				}
				last = 0
				i++
				continue
			}
			if n, w, ok := backref(repl[i:]); ok {
				b = append(b, "${"...)
				b = append(b, n...)
				b = append(b, '}')
				last = 0
				i += w
				continue
			}
		}
		if c == '$' {
			b = append(b, "$$"...)
		} else {
			b = append(b, c)
		}
		last = c
		i++
	}
	return string(b)
}
