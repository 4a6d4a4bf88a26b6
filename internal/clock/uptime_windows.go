//go:build windows

package clock

import (
	"time"

	"golang.org/x/sys/windows"
)

// GetTickCount64 keeps counting while the machine sleeps or hibernates.
func systemUptime() (time.Duration, error) {
	return windows.DurationSinceBoot(), nil
}
