package schedule

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"
)

// CronExpr renders s as a 5-field cron expression
// (minute hour day-of-month month day-of-week).
func (s Spec) CronExpr() string {
	return fmt.Sprintf("%d %d * * %d", s.Minute, s.Hour, int(s.Day.Time()))
}

// Upcoming returns the next n occurrences of s strictly after from. Unlike
// Resolve it always moves forward, so it shows when the slot comes around
// again rather than what a launch at from would act on.
func Upcoming(s Spec, from time.Time, n int) ([]time.Time, error) {
	expr := s.CronExpr()
	if !gronx.IsValid(expr) {
		return nil, fmt.Errorf("invalid cron expression %q", expr)
	}
	out := make([]time.Time, 0, n)
	ref := from
	for i := 0; i < n; i++ {
		next, err := gronx.NextTickAfter(expr, ref, false)
		if err != nil {
			return out, fmt.Errorf("next occurrence of %q: %w", expr, err)
		}
		out = append(out, next)
		ref = next
	}
	return out, nil
}
