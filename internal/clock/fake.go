package clock

import (
	"sync"
	"time"
)

// Fake is a manually driven Clock for tests. After advances the virtual time
// by the requested duration and fires immediately, so loops built on it run
// to completion without real sleeping. Uptime advances together with Now.
type Fake struct {
	mu        sync.Mutex
	now       time.Time
	uptime    time.Duration
	uptimeErr error
	waits     []time.Duration
}

// NewFake creates a Fake clock positioned at now with zero uptime.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Uptime() (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uptimeErr != nil {
		return 0, f.uptimeErr
	}
	return f.uptime, nil
}

func (f *Fake) After(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	f.waits = append(f.waits, d)
	f.advance(d)
	now := f.now
	f.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Advance moves the virtual time and uptime forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.advance(d)
	f.mu.Unlock()
}

func (f *Fake) advance(d time.Duration) {
	if d <= 0 {
		return
	}
	f.now = f.now.Add(d)
	f.uptime += d
}

// SetUptime sets the current uptime reading.
func (f *Fake) SetUptime(d time.Duration) {
	f.mu.Lock()
	f.uptime = d
	f.mu.Unlock()
}

// SetUptimeErr makes Uptime fail with err until it is reset to nil.
func (f *Fake) SetUptimeErr(err error) {
	f.mu.Lock()
	f.uptimeErr = err
	f.mu.Unlock()
}

// Waits returns every duration passed to After, in call order.
func (f *Fake) Waits() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Duration, len(f.waits))
	copy(out, f.waits)
	return out
}

var _ Clock = (*Fake)(nil)
