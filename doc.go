// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package dataobject provides small value objects wrapping primitive values
// and a base for enumerated value sets.
//
// The String value object exposes comparison, search, replacement, regular
// expression and extraction operations over a single string. Case-insensitive
// operations use simple Unicode case folding and are independent of the
// current locale.
//
// Regular expressions are written with delimiters and optional trailing
// modifiers, for example:
//
//	`/(\d+)/`
//	`#^foo/bar#i`
//	`{\w+}U`
//
// The supported modifiers are i, m, s, U, A, u and D. The expression between
// the delimiters uses the [regexp/syntax] (RE2) grammar.
//
// Without the m modifier '$' only matches at the very end of the text, so
// `/foo$/` does not match "foo\n". This is PCRE's behavior with the D
// modifier, which is therefore accepted but has no effect. Use `/foo\n?$/`
// or the m modifier to also accept a trailing newline.
package dataobject

// BUG(cvieth): There is no mechanism for full case folding, that is, for
// characters that involve multiple runes in the input or output
// (see: https://pkg.go.dev/unicode#pkg-note-BUG).
