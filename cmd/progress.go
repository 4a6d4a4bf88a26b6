package cmd

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"github.com/warpdl/schedreboot/internal/schedule"
)

// countdown renders the time left until the warning time as a bar. It is
// driven by monitor ticks; a nil *countdown ignores every call.
type countdown struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	total int64
	left  atomic.Int64
}

// newCountdown returns nil when the warning time is not in the future.
func newCountdown(w io.Writer, now time.Time, target schedule.Target) *countdown {
	total := int64(target.Remaining(now) / time.Second)
	if total <= 0 {
		return nil
	}
	c := &countdown{total: total}
	c.left.Store(total)

	name := "Warning in"
	c.p = mpb.New(mpb.WithOutput(w), mpb.WithWidth(48), mpb.WithRefreshRate(time.Second))
	c.bar = c.p.New(total,
		mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.OnComplete(
				decor.Any(func(decor.Statistics) string {
					return (time.Duration(c.left.Load()) * time.Second).String()
				}, decor.WC{W: 10}),
				"due",
			),
		),
		mpb.AppendDecorators(
			decor.Name(target.ActionTime.Format(journalTimeLayout)),
		),
	)
	return c
}

// Update moves the bar to reflect remaining, which is the time left until
// the warning time at now.
func (c *countdown) Update(_ time.Time, remaining time.Duration) {
	if c == nil {
		return
	}
	left := int64(remaining / time.Second)
	if left < 0 {
		left = 0
	}
	if left > c.total {
		left = c.total
	}
	c.left.Store(left)
	c.bar.SetCurrent(c.total - left)
}

// Stop aborts an unfinished bar and waits for the final render.
func (c *countdown) Stop() {
	if c == nil {
		return
	}
	if !c.bar.Completed() {
		c.bar.Abort(false)
	}
	c.p.Wait()
}
