//go:build !windows

package common

// DefaultLogDir is where dated journal files are appended when no
// directory is configured.
const DefaultLogDir = "/var/log/schedreboot"

// DefaultShutdownCommand is resolved through PATH.
const DefaultShutdownCommand = "shutdown"
