//go:build !windows

package shutdown

import (
	"strconv"
	"time"

	"github.com/warpdl/schedreboot/internal/schedule"
)

// Args returns the shutdown(8) arguments, e.g. "-r +5". The delay is rounded
// up to whole minutes since that is the finest relative time shutdown(8)
// accepts portably.
func Args(action schedule.Action, delay time.Duration) []string {
	flag := "-r"
	if action == schedule.Shutdown {
		flag = "-h"
	}
	mins := int64((delay + time.Minute - 1) / time.Minute)
	if mins < 0 {
		mins = 0
	}
	return []string{flag, "+" + strconv.FormatInt(mins, 10)}
}
