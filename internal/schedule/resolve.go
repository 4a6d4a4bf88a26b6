package schedule

import "time"

// WarningLead is the OS countdown requested from the shutdown command. The
// countdown starts at Target.WarningTime and ends at Target.ActionTime.
const WarningLead = 300 * time.Second

// Target is a resolved Spec. WarningTime is always ActionTime - WarningLead.
// Neither carries a monotonic reading, so comparisons with time.Now follow
// the wall clock, including jumps after sleep or a clock step.
type Target struct {
	ActionTime  time.Time
	WarningTime time.Time
}

// Resolve returns the occurrence of spec's day/hour/minute in the current
// week, counted from the start of today in now's location. When the target
// day is today the result is today's slot even if it has already passed;
// callers treat a past target as due.
func Resolve(now time.Time, spec Spec) Target {
	daysAhead := DaysAhead(now.Weekday(), spec.Day)
	y, m, d := now.Date()
	action := time.Date(y, m, d+daysAhead, spec.Hour, spec.Minute, 0, 0, now.Location())
	return Target{
		ActionTime:  action,
		WarningTime: action.Add(-WarningLead),
	}
}

// DaysAhead returns how many days separate today from the target day,
// in 0..6.
func DaysAhead(today time.Weekday, target Weekday) int {
	n := int(target) - (int(today) + 1)
	if n < 0 {
		n += 7
	}
	return n
}

// Due reports whether the warning time has been reached at now.
func (t Target) Due(now time.Time) bool {
	return !now.Before(t.WarningTime)
}

// Remaining returns the time left until the warning time. It is negative
// once the warning time has passed. The monitor issues the action when it
// reaches zero, with a WarningLead countdown handed to the OS, so the user
// sees the five minute warning and the action itself lands at ActionTime.
func (t Target) Remaining(now time.Time) time.Duration {
	return t.WarningTime.Sub(now)
}
