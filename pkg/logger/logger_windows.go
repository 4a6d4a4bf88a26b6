//go:build windows

package logger

import (
	"fmt"

	"golang.org/x/sys/windows/svc/eventlog"
)

// Event IDs for Windows Event Log entries.
const (
	EventIDInfo    uint32 = 1
	EventIDWarning uint32 = 2
	EventIDError   uint32 = 3
)

// EventLogger writes log messages to the Windows Event Log so that scheduled
// reboots are visible in Event Viewer next to the shutdown entries themselves.
// Debug messages are not forwarded.
type EventLogger struct {
	log EventLogWriter
}

// NewEventLogger opens the event log for sourceName.
// An unregistered source still logs, but Event Viewer shows a
// "description not found" preamble on every entry.
func NewEventLogger(sourceName string) (*EventLogger, error) {
	elog, err := eventlog.Open(sourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log %q: %w", sourceName, err)
	}
	return NewEventLoggerWithWriter(elog), nil
}

// NewEventLoggerWithWriter creates an EventLogger over w.
func NewEventLoggerWithWriter(w EventLogWriter) *EventLogger {
	return &EventLogger{log: w}
}

func (e *EventLogger) Debug(format string, args ...interface{}) {}

func (e *EventLogger) Info(format string, args ...interface{}) {
	if e.log != nil {
		_ = e.log.Info(EventIDInfo, fmt.Sprintf(format, args...))
	}
}

func (e *EventLogger) Warning(format string, args ...interface{}) {
	if e.log != nil {
		_ = e.log.Warning(EventIDWarning, fmt.Sprintf(format, args...))
	}
}

func (e *EventLogger) Error(format string, args ...interface{}) {
	if e.log != nil {
		_ = e.log.Error(EventIDError, fmt.Sprintf(format, args...))
	}
}

// Close releases the event log handle. Later calls are no-ops.
func (e *EventLogger) Close() error {
	if e.log == nil {
		return nil
	}
	err := e.log.Close()
	e.log = nil
	return err
}

var _ Logger = (*EventLogger)(nil)
