// Package value provides two immutable value containers that make the
// presence or absence of a value an explicit, checked part of a signature:
// Required, whose construction rejects absent values, and Optional, which
// represents absence explicitly and safely for reference-like types.
//
// Both containers delegate equality, hashing and string conversion to the
// wrapped value (see Equaler and Hasher), with documented fallbacks for an
// absent Optional.
package value

import "fmt"

// Optional is an immutable container that makes the absence of a
// reference-like value explicit.
//
// The zero Optional is ready to use and absent. Presence is computed from the
// stored slot on every read; there is no separate flag that could fall out of
// sync with it.
//
// As with Required, the element type is expected to be reference-like; an
// Optional of a non-nillable kind is always present.
type Optional[T any] struct {
	value T
}

// NewOptional wraps v, absent or not.
//
// It never fails: absence is a legitimate state of the container, not a defect.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{value: v}
}

// HasValue reports whether the container holds a present value.
func (o Optional[T]) HasValue() bool {
	return !isAbsent(o.value)
}

// Value returns the stored slot verbatim, the absent sentinel included.
func (o Optional[T]) Value() T {
	return o.value
}

// Get returns the stored value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.HasValue()
}

// Equal reports whether both containers are equal: an absent container equals
// only another absent container, and two present containers delegate to the
// wrapped value's own equality (see Equaler). The wrapped value's equality is
// never consulted while the container is absent.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if !o.HasValue() {
		return !other.HasValue()
	}

	if !other.HasValue() {
		return false
	}

	return equalValues(o.value, other.value)
}

// Hash returns the wrapped value's hash (see Hasher) when present and 0 when
// absent.
func (o Optional[T]) Hash() uint64 {
	if !o.HasValue() {
		return 0
	}

	return Hash(o.value)
}

// String returns the wrapped value's string conversion when present and the
// empty string when absent.
func (o Optional[T]) String() string {
	if !o.HasValue() {
		return ""
	}

	return fmt.Sprint(o.value)
}
