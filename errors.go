package value

import "errors"

// ErrAbsentValue is returned by New when the supplied value is absent.
//
// It signals a runtime data condition, not a defect: callers are expected
// to recover, either by substituting another value or by propagating the error.
var ErrAbsentValue = errors.New("value is absent")

// BrokenPromiseError is the panic value raised when reading a Required
// container that was never constructed with New.
//
// It signals a programming defect rather than a runtime condition: the container
// reached the reader through zero-initialization (a plain variable declaration,
// an array or slice allocation, an unset struct field), bypassing the validating
// constructor. Fix the construction site instead of recovering.
type BrokenPromiseError struct{}

func (*BrokenPromiseError) Error() string {
	return "broken promise: Required container was zero-initialized (declared, allocated in an array or slice, or left unset in a struct) instead of constructed with New"
}
