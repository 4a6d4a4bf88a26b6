//go:build !linux && !windows && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package clock

import "time"

func systemUptime() (time.Duration, error) {
	return ProcessUptime(), nil
}
