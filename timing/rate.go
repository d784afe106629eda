package timing

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Debounce returns a function that runs fn once calls to it have stopped
// for delay.
func Debounce(delay time.Duration, fn func()) func() {
	debounced := debounce.New(delay)
	return func() { debounced(fn) }
}

// Throttle returns a function that schedules fn to run after delay unless
// a run is already pending. It reports whether the call was accepted.
func Throttle(delay time.Duration, fn func()) func() bool {
	var (
		mu      sync.Mutex
		pending bool
	)
	return func() bool {
		mu.Lock()
		defer mu.Unlock()
		if pending {
			return false
		}
		pending = true
		time.AfterFunc(delay, func() {
			fn()
			mu.Lock()
			pending = false
			mu.Unlock()
		})
		return true
	}
}
