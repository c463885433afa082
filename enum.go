package dataobject

import "golang.org/x/exp/slices"

// Enumerable is implemented by types that can produce every legal value of
// an enumeration, in order.
type Enumerable interface {
	Values() []Value
}

// ValuesFunc adapts a function to the Enumerable interface.
type ValuesFunc func() []Value

// Values calls f.
func (f ValuesFunc) Values() []Value { return f() }

// Enum pairs the selected value of an enumeration with the Enumerable that
// produces its legal values.
//
// The selected value is not checked against the legal values; use Contains
// to do so explicitly.
type Enum struct {
	values   Enumerable
	selected Value
}

// NewEnum returns an Enum with selected as its current value.
func NewEnum(values Enumerable, selected Value) *Enum {
	return &Enum{values: values, selected: selected}
}

// Selected returns the value the Enum was created with.
func (e *Enum) Selected() Value { return e.selected }

// Values returns the legal values of the enumeration or nil if e has no
// Enumerable.
func (e *Enum) Values() []Value {
	if e.values == nil {
		return nil
	}
	return e.values.Values()
}

// Contains reports whether v is Equal to one of the legal values of e.
func (e *Enum) Contains(v Value) bool {
	return slices.IndexFunc(e.Values(), func(x Value) bool {
		return Equal(x, v)
	}) != -1
}
