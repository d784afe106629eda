package timing

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadyCalled is returned by a function wrapped with Once after its
// first call.
var ErrAlreadyCalled = errors.New("arbor: function already called")

// Once wraps fn so that it runs at most once.
func Once[T any](fn func() T) func() (T, error) {
	var called atomic.Bool
	return func() (T, error) {
		if !called.CompareAndSwap(false, true) {
			var zero T
			return zero, ErrAlreadyCalled
		}
		return fn(), nil
	}
}
