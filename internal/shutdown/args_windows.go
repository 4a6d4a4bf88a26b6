//go:build windows

package shutdown

import (
	"strconv"
	"time"

	"github.com/warpdl/schedreboot/internal/schedule"
)

// Args returns the shutdown.exe arguments, e.g. "/r /t 300".
func Args(action schedule.Action, delay time.Duration) []string {
	flag := "/r"
	if action == schedule.Shutdown {
		flag = "/s"
	}
	secs := int64(delay / time.Second)
	if secs < 0 {
		secs = 0
	}
	return []string{flag, "/t", strconv.FormatInt(secs, 10)}
}
