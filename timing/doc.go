// Package timing provides goroutine-safe call-rate primitives.
//
// # Debounce and Throttle
//
// Debounce delays fn until calls have stopped arriving for the given delay.
// Throttle runs fn once per window: the first call schedules fn to run after
// the delay and calls made while it is pending are dropped.
//
//	save := timing.Debounce(500*time.Millisecond, flush)
//	for range edits {
//		save()
//	}
//
// # Countdown
//
// Countdown ticks a counter down from total to zero, reporting every value
// together with its State. It reports the starting value immediately, can be
// paused and reset, and stops when the context is cancelled.
//
//	c := timing.Countdown(ctx, 60, time.Second, func(left int, s timing.State) {
//		fmt.Println(left, s)
//	})
//	defer c.Pause()
//
// # Once
//
// Once wraps a function so that only its first call runs; later calls return
// ErrAlreadyCalled.
package timing
