package scheduler

import (
	"context"
	"time"

	"github.com/warpdl/schedreboot/internal/clock"
	"github.com/warpdl/schedreboot/internal/schedule"
	"github.com/warpdl/schedreboot/pkg/logger"
)

// Executor issues the OS shutdown command. Execute must not block for the
// duration of the countdown.
type Executor interface {
	Execute(ctx context.Context, action schedule.Action, delay time.Duration) error
}

// Options tune the monitor loop.
type Options struct {
	// PollInterval is the longest wait between clock samples.
	// Zero means DefaultPollInterval.
	PollInterval time.Duration

	// Repeat re-issues the action on every tick once the target is due,
	// instead of going dormant after the first successful dispatch.
	Repeat bool

	// OnTick, if set, is called with each clock sample and the time left
	// until the warning time (negative once due).
	OnTick func(now time.Time, remaining time.Duration)
}

// Monitor waits for a resolved target and fires the action.
type Monitor struct {
	clock clock.Clock
	exec  Executor
	log   logger.Logger
	opts  Options
}

// New creates a Monitor.
func New(clk clock.Clock, exec Executor, log logger.Logger, opts Options) *Monitor {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Monitor{clock: clk, exec: exec, log: log, opts: opts}
}

// Run blocks until ctx is cancelled and returns ctx.Err().
//
// The action is issued with a WarningLead countdown once the target's
// warning time has been reached or passed, so it takes effect at the action
// time. A target that is already in the past fires on the first tick. A
// failed dispatch is logged and retried on the next tick. After a successful
// dispatch the monitor goes dormant unless Options.Repeat is set.
func (m *Monitor) Run(ctx context.Context, action schedule.Action, target schedule.Target) error {
	fired := false
	first := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := m.clock.Now()
		remaining := target.Remaining(now)
		if m.opts.OnTick != nil {
			m.opts.OnTick(now, remaining)
		}

		if remaining <= 0 && (!fired || m.opts.Repeat) {
			if first && now.After(target.ActionTime) {
				m.log.Warning("Target %s already passed, issuing %s now",
					target.ActionTime.Format(time.DateTime), action)
			}
			if err := m.exec.Execute(ctx, action, schedule.WarningLead); err != nil {
				m.log.Error("Failed to issue %s: %v", action, err)
			} else {
				if !fired {
					m.log.Info("Issued %s with a %s warning", action, schedule.WarningLead)
				}
				fired = true
			}
		}
		first = false

		if fired && !m.opts.Repeat {
			<-ctx.Done()
			return ctx.Err()
		}

		wait := m.opts.PollInterval
		if remaining > 0 && remaining < wait {
			wait = remaining
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.clock.After(wait):
		}
	}
}
