package value

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// Equaler is implemented by values that define their own equality.
//
// Both container types delegate their Equal methods to it whenever the wrapped
// value implements it, invoking it exactly once per comparison.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Hasher is implemented by values that define their own hash.
//
// Both container types delegate their Hash methods to it whenever the wrapped
// value implements it.
type Hasher interface {
	Hash() uint64
}

// Hash returns the hash the containers delegate to for v:
// v's own Hash when it implements Hasher,
// otherwise an FNV-1a hash of v's string conversion.
func Hash[T any](v T) uint64 {
	if h, ok := any(v).(Hasher); ok {
		return h.Hash()
	}

	h := fnv.New64a()

	fmt.Fprint(h, v)

	return h.Sum64()
}

// equalValues delegates to a's own equality when implemented (see Equaler)
// and falls back to reflect.DeepEqual, Go's generic stand-in for value
// equality across non-comparable kinds.
func equalValues[T any](a T, b T) bool {
	if eq, ok := any(a).(Equaler[T]); ok {
		return eq.Equal(b)
	}

	return reflect.DeepEqual(a, b)
}

// isAbsent reports whether v is the absent sentinel for its type:
// the untyped nil interface or a nil value of a nillable kind.
//
// Values of every other kind have no absent sentinel and are never absent.
// Go constraints cannot express nillability, so the "reference-like element
// types" expectation of the containers is documented rather than enforced.
func isAbsent[T any](v T) bool {
	boxed := any(v)
	if boxed == nil {
		return true
	}

	rv := reflect.ValueOf(boxed)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
