// Package clock abstracts wall-clock time, waiting and machine uptime so the
// scheduler can be driven deterministically in tests.
package clock

import "time"

// Clock is the time source consumed by the scheduler.
type Clock interface {
	// Now returns the current local wall-clock time.
	Now() time.Time

	// Uptime returns how long the machine has been running.
	Uptime() (time.Duration, error)

	// After waits for the duration to elapse and then sends the current
	// time on the returned channel.
	After(d time.Duration) <-chan time.Time
}

// System is the production Clock backed by the time package and the
// operating system's uptime counter.
type System struct{}

// NewSystem creates a System clock.
func NewSystem() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Uptime() (time.Duration, error) {
	return systemUptime()
}

func (System) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// processStart anchors the process-uptime fallback. time.Since uses the
// monotonic reading, so wall-clock steps do not affect it.
var processStart = time.Now()

// ProcessUptime returns the time elapsed since the process started.
func ProcessUptime() time.Duration {
	return time.Since(processStart)
}

var _ Clock = System{}
