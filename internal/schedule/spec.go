package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors. Their text is shown to the operator below the usage.
var (
	ErrMissingArguments = errors.New("missing required arguments")
	ErrInvalidAction    = errors.New("the fourth argument must be a reboot option of -r or /r or a shutdown option of -s or /s")
	ErrInvalidDay       = errors.New("the day of the week argument was not an integer between 1 and 7")
	ErrInvalidHour      = errors.New("the hour was not an integer between 0 and 23")
	ErrInvalidMinute    = errors.New("the minute was not an integer between 0 and 59")
	ErrInvalidUptime    = errors.New("the uptime argument was not an integer of 0 or more, or -1 for unbounded")
)

// Action is the OS-level operation performed at the target time.
type Action int

const (
	Reboot Action = iota + 1
	Shutdown
)

func (a Action) String() string {
	switch a {
	case Reboot:
		return "reboot"
	case Shutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Valid reports whether a is Reboot or Shutdown.
func (a Action) Valid() bool {
	return a == Reboot || a == Shutdown
}

// ParseAction maps the operator's switch to an Action. Both the dash and
// the slash forms are accepted.
func ParseAction(token string) (Action, error) {
	switch token {
	case "-r", "/r":
		return Reboot, nil
	case "-s", "/s":
		return Shutdown, nil
	}
	return 0, fmt.Errorf("%w (got %q)", ErrInvalidAction, token)
}

// Weekday is a 1-indexed day of week with Sunday as day 1.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid reports whether d is within 1..7.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Time converts d to the 0-indexed time.Weekday.
func (d Weekday) Time() time.Weekday {
	return time.Weekday(d - 1)
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return d.Time().String()
}

// Spec is a validated weekly target. Build it with New or ParseArgs.
type Spec struct {
	Day    Weekday
	Hour   int
	Minute int
	Action Action
	// MinUptime is how long the machine must have been up before the
	// target is resolved. Zero disables the gate.
	MinUptime time.Duration
}

// New validates every field and returns the Spec.
func New(day Weekday, hour, minute int, action Action, minUptime time.Duration) (Spec, error) {
	if !action.Valid() {
		return Spec{}, fmt.Errorf("%w (got %s)", ErrInvalidAction, action)
	}
	if !day.Valid() {
		return Spec{}, fmt.Errorf("%w (got %d)", ErrInvalidDay, int(day))
	}
	if hour < 0 || hour > 23 {
		return Spec{}, fmt.Errorf("%w (got %d)", ErrInvalidHour, hour)
	}
	if minute < 0 || minute > 59 {
		return Spec{}, fmt.Errorf("%w (got %d)", ErrInvalidMinute, minute)
	}
	if minUptime < 0 {
		return Spec{}, fmt.Errorf("%w (got %s)", ErrInvalidUptime, minUptime)
	}
	return Spec{
		Day:       day,
		Hour:      hour,
		Minute:    minute,
		Action:    action,
		MinUptime: minUptime,
	}, nil
}

// UptimeGated reports whether the uptime gate is enabled.
func (s Spec) UptimeGated() bool {
	return s.MinUptime > 0
}

func (s Spec) String() string {
	return fmt.Sprintf("%s on %s at %02d:%02d", s.Action, s.Day, s.Hour, s.Minute)
}
