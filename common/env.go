// Package common provides shared constants used by the schedreboot command
// line and its internal packages.
package common

// Environment variable names for configuration.
const (
	// LogDirEnv overrides the directory holding the dated journal files.
	LogDirEnv = "SCHEDREBOOT_LOG_DIR"

	// ShutdownCommandEnv overrides the name or path of the OS shutdown command.
	ShutdownCommandEnv = "SCHEDREBOOT_SHUTDOWN_COMMAND"

	// PollIntervalEnv overrides the monitor and uptime gate sampling interval.
	PollIntervalEnv = "SCHEDREBOOT_POLL_INTERVAL"

	// RepeatEnv re-issues the shutdown command on every tick once the target passed.
	RepeatEnv = "SCHEDREBOOT_REPEAT"

	// DryRunEnv logs the shutdown command instead of running it.
	DryRunEnv = "SCHEDREBOOT_DRY_RUN"

	// ProgressEnv renders the countdown bar until the warning time.
	ProgressEnv = "SCHEDREBOOT_PROGRESS"

	// EventSourceEnv names the Windows Event Log source to log to.
	EventSourceEnv = "SCHEDREBOOT_EVENT_SOURCE"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "SCHEDREBOOT_DEBUG"
)
