// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg implements the case-insensitive byte searches that back
// the ASCII fast paths of package fold.
package bytealg

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/sys/cpu"
)

// MaxBruteForce is the longest substring for which a brute force search is
// preferred once IndexByteString starts producing false positives.
var MaxBruteForce = maxBruteForce()

func maxBruteForce() int {
	if cpu.X86.HasAVX2 {
		return 64
	}
	// Empirical data shows that using Index can get better
	// performance when len(s) <= 16.
	return 16
}

// Cutover reports the number of failures of IndexByteString we should
// tolerate before switching over to a brute force search.
// n is the number of bytes processed so far.
// See the bytes.Index implementation for details.
func Cutover(n int) int {
	if cpu.X86.HasAVX2 {
		// 1 error per 8 characters, plus a few slop to start.
		return (n + 16) / 8
	}
	// 1 error per 16 characters, plus a few slop to start.
	return 4 + n>>4
}

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// IndexByteString returns the index of the first instance of c in s ignoring
// ASCII case, or -1 if c is not present in s.
func IndexByteString(s string, c byte) int {
	if len(s) <= 12 {
		if !isAlpha(c) {
			for i := 0; i < len(s); i++ {
				if s[i] == c {
					return i
				}
			}
		} else {
			c |= ' '
			for i := 0; i < len(s); i++ {
				if s[i]|' ' == c {
					return i
				}
			}
		}
		return -1
	}
	n := strings.IndexByte(s, c)
	if n == 0 || !isAlpha(c) {
		return n
	}

	c ^= ' ' // swap case
	if s[0] == c {
		return 0
	}

	// The other case can only win if it occurs before n.
	if n > 0 {
		s = s[:n]
	}

	if o := strings.IndexByte(s, c); n == -1 || (o != -1 && o < n) {
		n = o
	}
	return n
}

// IndexNonASCII returns the index of the first non-ASCII byte in s, or -1
// if s is entirely ASCII.
func IndexNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}
