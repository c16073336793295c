package value

import "fmt"

// Required is an immutable container whose value is validated, at
// construction time, to never be absent.
//
// It is meant to stand in for T at API boundaries: construct it with New (or
// Must) where the value enters the system, read it back with Value. The element
// type is expected to be reference-like (a pointer, map, slice, func, chan or
// interface); values of other kinds have no absent sentinel and are accepted
// unconditionally.
//
// Go leaves one hole in the promise: the zero Required exists without New ever
// running. Readers detect that container at access time and panic with a
// *BrokenPromiseError, so the defect surfaces at the first read instead of
// masquerading as a present value.
type Required[T any] struct {
	value T
	valid bool
}

// New validates v and wraps it.
//
// It returns ErrAbsentValue when v is absent (nil). This is the single
// validation point: a container obtained from New never yields an absent
// value again.
//
// New does not look through type-erased references: wrapping an any that
// happens to hold a Required produces a container of a container. Use
// FromRequired (or plain assignment) where the static type is known.
func New[T any](v T) (Required[T], error) {
	if isAbsent(v) {
		return Required[T]{}, ErrAbsentValue
	}

	return Required[T]{value: v, valid: true}, nil
}

// Must is New for values statically known to be present.
// It panics with ErrAbsentValue instead of returning it.
func Must[T any](v T) Required[T] {
	r, err := New(v)
	if err != nil {
		panic(err)
	}

	return r
}

// FromRequired constructs a container from an already-wrapped value.
//
// The result wraps other's inner value directly; a container nested inside
// a container cannot be produced on this path.
func FromRequired[T any](other Required[T]) Required[T] {
	return Required[T]{value: other.Value(), valid: true}
}

// Value returns the wrapped value.
//
// It panics with a *BrokenPromiseError when the container is the zero value,
// ie. it was never constructed with New.
func (r Required[T]) Value() T {
	if !r.valid {
		panic(&BrokenPromiseError{})
	}

	return r.value
}

// Equal reports whether both containers wrap equal values, delegating to the
// wrapped value's own equality (see Equaler).
func (r Required[T]) Equal(other Required[T]) bool {
	return equalValues(r.Value(), other.Value())
}

// Hash returns the wrapped value's hash (see Hasher).
func (r Required[T]) Hash() uint64 {
	return Hash(r.Value())
}

// String returns the wrapped value's string conversion.
func (r Required[T]) String() string {
	return fmt.Sprint(r.Value())
}
