//go:build !windows

package shutdown

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/warpdl/schedreboot/internal/schedule"
	"github.com/warpdl/schedreboot/pkg/logger"
)

func TestArgsUnix(t *testing.T) {
	tests := []struct {
		action schedule.Action
		delay  time.Duration
		want   []string
	}{
		{schedule.Reboot, 300 * time.Second, []string{"-r", "+5"}},
		{schedule.Shutdown, 300 * time.Second, []string{"-h", "+5"}},
		{schedule.Reboot, 301 * time.Second, []string{"-r", "+6"}},
		{schedule.Reboot, 0, []string{"-r", "+0"}},
	}
	for _, tt := range tests {
		if got := Args(tt.action, tt.delay); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Args(%s, %v) = %v; want %v", tt.action, tt.delay, got, tt.want)
		}
	}
}

// writeFakeShutdown creates a script that records its arguments to out.
func writeFakeShutdown(t *testing.T, exitCode int) (script, out string) {
	t.Helper()
	dir := t.TempDir()
	out = filepath.Join(dir, "args.txt")
	script = filepath.Join(dir, "shutdown")
	body := "#!/bin/sh\necho \"$@\" > \"" + out + "\"\nexit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return script, out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestCommand_StartsAndReaps(t *testing.T) {
	script, out := writeFakeShutdown(t, 0)
	log := logger.NewMockLogger()
	c := NewCommand(script, log)

	if err := c.Execute(context.Background(), schedule.Reboot, schedule.WarningLead); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	waitFor(t, func() bool { return len(log.InfoCalls()) == 1 })

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "-r +5" {
		t.Fatalf("recorded args = %q; want %q", got, "-r +5")
	}
	if len(log.ErrorCalls()) != 0 {
		t.Fatalf("unexpected errors: %v", log.ErrorCalls())
	}
}

func TestCommand_NonZeroExitLogged(t *testing.T) {
	script, _ := writeFakeShutdown(t, 1)
	log := logger.NewMockLogger()
	c := NewCommand(script, log)

	if err := c.Execute(context.Background(), schedule.Shutdown, schedule.WarningLead); err != nil {
		t.Fatalf("Execute should not wait for the exit status: %v", err)
	}
	waitFor(t, func() bool { return len(log.ErrorCalls()) == 1 })
	if !strings.Contains(log.ErrorCalls()[0], "exit status 1") {
		t.Fatalf("unexpected error log: %v", log.ErrorCalls())
	}
}

func TestCommand_SurvivesCancelledContext(t *testing.T) {
	script, out := writeFakeShutdown(t, 0)
	log := logger.NewMockLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewCommand(script, log).Execute(ctx, schedule.Reboot, schedule.WarningLead); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	waitFor(t, func() bool { return len(log.InfoCalls()) == 1 })
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("command did not run: %v", err)
	}
}
