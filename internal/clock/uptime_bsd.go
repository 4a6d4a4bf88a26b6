//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func systemUptime() (time.Duration, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, fmt.Errorf("sysctl kern.boottime: %w", err)
	}
	boot := time.Unix(tv.Unix())
	return time.Since(boot), nil
}
