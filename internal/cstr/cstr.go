//go:build cgo
// +build cgo

// Package cstr exposes the C library's ASCII case-insensitive string
// functions for use as a reference in tests.
package cstr

/*
#define _GNU_SOURCE
#include <stdlib.h>
#include <stddef.h>
#include <string.h>
#include <strings.h>

static ptrdiff_t cstr_strcasestr(const char *haystack, const char *needle) {
	char *res = strcasestr(haystack, needle);
	return res != NULL ? (ptrdiff_t)(res - haystack) : -1;
}
*/
import "C"
import "unsafe"

func clamp(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

// Strcasecmp compares s and t ignoring ASCII case. The strings must not
// contain NUL bytes.
func Strcasecmp(s, t string) int {
	cs := C.CString(s)
	ct := C.CString(t)
	ret := int(C.strcasecmp(cs, ct))
	C.free(unsafe.Pointer(cs))
	C.free(unsafe.Pointer(ct))
	return clamp(ret)
}

// Strcasestr returns the index of needle in haystack ignoring ASCII case,
// or -1. The strings must not contain NUL bytes.
func Strcasestr(haystack, needle string) int {
	hp := C.CString(haystack)
	np := C.CString(needle)
	n := int(C.cstr_strcasestr(hp, np))
	C.free(unsafe.Pointer(hp))
	C.free(unsafe.Pointer(np))
	return n
}
