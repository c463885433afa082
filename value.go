package dataobject

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind identifies the primitive wrapped by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
)

// Value is implemented by all value objects.
type Value interface {
	// Kind reports the kind of primitive held by the value.
	Kind() Kind
	// String returns the textual representation of the value.
	String() string
}

// Equal reports whether a and b hold the same kind of primitive with the
// same textual representation. A nil Value is only equal to another nil
// Value.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.String() == b.String()
}
