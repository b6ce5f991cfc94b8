package advanced

import "github.com/pkg/errors"

// Threading errors up and down the recursion in the bridge finder and the
// upper hull solver would add a lot of noise to code that is hard enough to
// read already. Instead, we panic with a hullError, and the public API recovers
// to convert it to an error. Panics that are not hullErrors are real bugs, and
// are passed through untouched.

var (
	// A caller (or the algorithm itself) broke an input contract: selection
	// from an empty sequence, a rank out of range, or a bridge over fewer than
	// two points.
	ErrPrecondition = errors.New("precondition violation")

	// A prune-and-search or wrapping loop stopped making progress. With exact
	// arithmetic this cannot happen; it is the guard against floating point
	// inconsistencies turning into infinite recursion.
	ErrStalled = errors.New("hull computation stalled")
)

type hullError struct {
	err error
}

// Panic with a hullError wrapping the given kind, so that callers can test the
// result with errors.Is.
func fatalf(kind error, format string, args ...interface{}) {
	panic(hullError{errors.Wrapf(kind, format, args...)})
}

func rethrow(err error) {
	panic(hullError{err})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullErr, ok := r.(hullError); ok {
			return hullErr.err
		}
		panic(r)
	}
	return nil
}

// Run fn, converting a hullError panic into a returned error.
func Catch(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandleHullPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
