package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnboundedUptime is the uptime argument that disables the gate.
const UnboundedUptime = -1

// ParseArgs builds a Spec from positional arguments:
//
//	<day:1-7> <hour:0-23> <minute:0-59> <-r|/r|-s|/s> [uptimeSeconds|-1]
//
// The action switch is checked first, then day, hour, minute and uptime.
// Arguments past the fifth are ignored.
func ParseArgs(args []string) (Spec, error) {
	if len(args) < 4 {
		return Spec{}, fmt.Errorf("%w: expected 4 or 5, got %d", ErrMissingArguments, len(args))
	}
	action, err := ParseAction(args[3])
	if err != nil {
		return Spec{}, err
	}
	day, hour, minute, err := parseTarget(args[0], args[1], args[2])
	if err != nil {
		return Spec{}, err
	}
	var minUptime time.Duration
	if len(args) > 4 {
		minUptime, err = parseUptime(args[4])
		if err != nil {
			return Spec{}, err
		}
	}
	return New(day, hour, minute, action, minUptime)
}

// ParseTarget builds a reboot Spec from day, hour and minute alone. It is
// used where the action does not matter, such as previews.
func ParseTarget(day, hour, minute string) (Spec, error) {
	d, h, m, err := parseTarget(day, hour, minute)
	if err != nil {
		return Spec{}, err
	}
	return New(d, h, m, Reboot, 0)
}

func parseTarget(day, hour, minute string) (Weekday, int, int, error) {
	d, err := parseRange(day, 1, 7, ErrInvalidDay)
	if err != nil {
		return 0, 0, 0, err
	}
	h, err := parseRange(hour, 0, 23, ErrInvalidHour)
	if err != nil {
		return 0, 0, 0, err
	}
	m, err := parseRange(minute, 0, 59, ErrInvalidMinute)
	if err != nil {
		return 0, 0, 0, err
	}
	return Weekday(d), h, m, nil
}

func parseRange(s string, lo, hi int, sentinel error) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w (got %q)", sentinel, s)
	}
	return n, nil
}

func parseUptime(s string) (time.Duration, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < UnboundedUptime {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidUptime, s)
	}
	if n == UnboundedUptime {
		return 0, nil
	}
	if n > maxUptimeSeconds {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidUptime, s)
	}
	return time.Duration(n) * time.Second, nil
}

// maxUptimeSeconds keeps the conversion to time.Duration from overflowing.
const maxUptimeSeconds = int64(1<<63-1) / int64(time.Second)
