package interval

import (
	"github.com/cockroachdb/errors"
)

// ErrUnrepresentable is returned by Unify and Subtract when the exact result
// is not a single interval. Callers that check CanUnify or CanSubtract first
// never see it.
var ErrUnrepresentable = errors.New("result is not a single interval")

// precondition builds the error a factory or relation method panics with when
// it is called with an argument no correct caller passes: an unset zero value,
// a NaN bound or reversed bounds. Use errors.HasAssertionFailure to detect it
// after a recover.
func precondition(format string, args ...interface{}) error {
	return errors.AssertionFailedf(format, args...)
}

// IsPrecondition reports whether v, a value obtained from recover, is a
// precondition violation raised by this package.
func IsPrecondition(v interface{}) bool {
	err, ok := v.(error)
	return ok && errors.HasAssertionFailure(err)
}
