// Package scheduler arms a resolved target and fires the shutdown action.
//
// It runs on the caller's goroutine: an optional uptime gate blocks until the
// machine has been up long enough, then the monitor samples the clock at a
// coarse interval (60 seconds by default) until the warning time is reached.
// Each wait is capped at the poll interval, so a wall-clock step caused by
// NTP, DST or system sleep is noticed within one interval. No state is kept
// beyond the target; a relaunched process resolves a fresh one.
package scheduler
