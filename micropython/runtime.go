// runtime.go — the unwind bridge between heap raises and ordinary errors.
//
// The emulated heap signals allocation failure the way the real interpreter
// does: with a non-local transfer (here, a panic carrying a private signal
// type). That transfer must never reach caller code as an unstructured jump;
// catchException is the single boundary where it is intercepted and turned
// into a plain error result.

package micropython

// raiseSig carries an interpreter-level raise until it is caught at the
// catchException boundary. It never escapes this package.
type raiseSig struct{ err *Error }

// raise performs a non-local transfer out of heap code, to be intercepted
// by the nearest catchException.
func raise(err *Error) { panic(raiseSig{err: err}) }

// catchException runs fn, converting an interpreter-level raise triggered
// during the call into an ordinary error. A successful result passes through
// unchanged. Panics that are not raises are genuine bugs and are re-thrown.
func catchException[T any](fn func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(raiseSig)
			if !ok {
				panic(r)
			}
			var zero T
			out, err = zero, sig.err
		}
	}()
	return fn(), nil
}

// catchErr is catchException for blocks with no result value.
func catchErr(fn func()) error {
	_, err := catchException(func() struct{} {
		fn()
		return struct{}{}
	})
	return err
}
