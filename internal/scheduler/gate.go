package scheduler

import (
	"context"
	"time"

	"github.com/warpdl/schedreboot/internal/clock"
	"github.com/warpdl/schedreboot/pkg/logger"
)

// DefaultPollInterval is used when no interval is configured.
const DefaultPollInterval = 60 * time.Second

// AwaitUptime blocks until clk reports an uptime of at least threshold,
// sampling once per interval. It returns nil at once when threshold is not
// positive, and ctx.Err() if ctx is cancelled first. A failed uptime read
// is logged and counts as not yet reached.
func AwaitUptime(ctx context.Context, clk clock.Clock, threshold, interval time.Duration, log logger.Logger) error {
	if threshold <= 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	announced := false
	for {
		up, err := clk.Uptime()
		switch {
		case err != nil:
			log.Warning("Unable to read uptime: %v", err)
		case up >= threshold:
			log.Info("Uptime %s reached the required %s", up.Truncate(time.Second), threshold)
			return nil
		case !announced:
			log.Info("Waiting for uptime of %s (currently %s)", threshold, up.Truncate(time.Second))
			announced = true
		default:
			log.Debug("Uptime %s, waiting for %s", up.Truncate(time.Second), threshold)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clk.After(interval):
		}
	}
}
