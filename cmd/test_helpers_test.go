package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/warpdl/schedreboot/internal/clock"
	"github.com/warpdl/schedreboot/internal/schedule"
	"github.com/warpdl/schedreboot/internal/scheduler"
	"github.com/warpdl/schedreboot/pkg/logger"
)

// captureOutput redirects os.Stdout and os.Stderr to pipes while f runs and
// returns what was written.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	var bufOut, bufErr bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); io.Copy(&bufOut, rOut) }()
	go func() { defer wg.Done(); io.Copy(&bufErr, rErr) }()

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	wg.Wait()
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

type executorCall struct {
	action schedule.Action
	delay  time.Duration
	at     time.Time
}

// fakeExecutor records calls and cancels the run context after the first
// one so the monitor returns.
type fakeExecutor struct {
	mu     sync.Mutex
	clk    clock.Clock
	cancel context.CancelFunc
	calls  []executorCall
}

func (f *fakeExecutor) Execute(_ context.Context, action schedule.Action, delay time.Duration) error {
	f.mu.Lock()
	f.calls = append(f.calls, executorCall{action: action, delay: delay, at: f.clk.Now()})
	f.mu.Unlock()
	f.cancel()
	return nil
}

func (f *fakeExecutor) Calls() []executorCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]executorCall(nil), f.calls...)
}

// withFakes swaps the runtime seams for a fake clock at now, an in-memory
// filesystem and a recording executor.
func withFakes(t *testing.T, now time.Time) (*clock.Fake, afero.Fs, *fakeExecutor) {
	t.Helper()
	clk := clock.NewFake(now)
	fs := afero.NewMemMapFs()
	ctx, cancel := context.WithCancel(context.Background())
	exec := &fakeExecutor{clk: clk, cancel: cancel}

	oldClock, oldFs, oldSignal, oldExec := newClock, newFs, signalContext, newExecutor
	newClock = func() clock.Clock { return clk }
	newFs = func() afero.Fs { return fs }
	signalContext = func() (context.Context, context.CancelFunc) { return ctx, cancel }
	newExecutor = func(logger.Logger) scheduler.Executor { return exec }
	t.Cleanup(func() {
		cancel()
		newClock, newFs, signalContext, newExecutor = oldClock, oldFs, oldSignal, oldExec
	})
	return clk, fs, exec
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}
