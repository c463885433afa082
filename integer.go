package dataobject

import "strconv"

// Integer is a mutable value object holding a single int.
type Integer struct {
	value int
}

// NewInteger returns an Integer holding i.
func NewInteger(i int) *Integer { return &Integer{value: i} }

// Value returns the int held by i.
func (i *Integer) Value() int { return i.value }

// Set replaces the int held by i.
func (i *Integer) Set(v int) { i.value = v }

// Kind returns KindInteger.
func (i *Integer) Kind() Kind { return KindInteger }

// String returns the base 10 representation of i.
func (i *Integer) String() string { return strconv.Itoa(i.value) }

// Equals reports whether other is an integer value equal to i.
func (i *Integer) Equals(other Value) bool {
	return other != nil && other.Kind() == KindInteger && other.String() == i.String()
}
