// Package shutdown hands the reboot or shutdown request to the operating
// system's own delayed shutdown facility. The OS owns the countdown and its
// user-facing warning; the caller does not wait for it.
package shutdown

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/warpdl/schedreboot/internal/schedule"
	"github.com/warpdl/schedreboot/pkg/logger"
)

// Command runs the OS shutdown command.
type Command struct {
	name string
	log  logger.Logger
}

// NewCommand creates an executor for the shutdown command name, which is
// looked up in PATH unless it contains a path separator.
func NewCommand(name string, log logger.Logger) *Command {
	return &Command{name: name, log: log}
}

// Execute starts the command and returns without waiting for it. The exit
// status is logged from a separate goroutine. The command is not tied to
// ctx: cancelling the scheduler must not abort a countdown already handed
// to the OS.
func (c *Command) Execute(_ context.Context, action schedule.Action, delay time.Duration) error {
	args := Args(action, delay)
	cmd := exec.Command(c.name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.name, err)
	}
	line := c.name + " " + strings.Join(args, " ")
	c.log.Debug("Started %s (pid %d)", line, cmd.Process.Pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			c.log.Error("%s: %v", line, err)
			return
		}
		c.log.Info("%s accepted the request", line)
	}()
	return nil
}

// DryRun logs the command that would have been run.
type DryRun struct {
	name string
	log  logger.Logger
}

// NewDryRun creates a DryRun executor for the shutdown command name.
func NewDryRun(name string, log logger.Logger) *DryRun {
	return &DryRun{name: name, log: log}
}

func (d *DryRun) Execute(_ context.Context, action schedule.Action, delay time.Duration) error {
	d.log.Info("Dry run, not executing: %s %s", d.name, strings.Join(Args(action, delay), " "))
	return nil
}
