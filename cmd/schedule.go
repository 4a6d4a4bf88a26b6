package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/schedreboot/cmd/common"
	sharedcommon "github.com/warpdl/schedreboot/common"
	"github.com/warpdl/schedreboot/internal/clock"
	"github.com/warpdl/schedreboot/internal/journal"
	"github.com/warpdl/schedreboot/internal/schedule"
	"github.com/warpdl/schedreboot/internal/scheduler"
	"github.com/warpdl/schedreboot/internal/shutdown"
	"github.com/warpdl/schedreboot/pkg/logger"
)

var (
	logDir          string
	shutdownCommand string
	pollInterval    time.Duration
	repeat          bool
	dryRun          bool
	progress        bool
	eventSource     string

	globalFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "log-dir, l",
			Usage:       "directory receiving the dated log files",
			Value:       sharedcommon.DefaultLogDir,
			EnvVar:      sharedcommon.LogDirEnv,
			Destination: &logDir,
		},
		cli.StringFlag{
			Name:        "shutdown-command",
			Usage:       "OS command invoked to reboot or shut down",
			Value:       sharedcommon.DefaultShutdownCommand,
			EnvVar:      sharedcommon.ShutdownCommandEnv,
			Destination: &shutdownCommand,
		},
		cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "longest wait between clock checks",
			Value:       scheduler.DefaultPollInterval,
			EnvVar:      sharedcommon.PollIntervalEnv,
			Destination: &pollInterval,
		},
		cli.BoolFlag{
			Name:        "repeat",
			Usage:       "re-issue the action on every check once it is due",
			EnvVar:      sharedcommon.RepeatEnv,
			Destination: &repeat,
		},
		cli.BoolFlag{
			Name:        "dry-run, n",
			Usage:       "log the shutdown command instead of running it",
			EnvVar:      sharedcommon.DryRunEnv,
			Destination: &dryRun,
		},
		cli.BoolFlag{
			Name:        "progress, p",
			Usage:       "render a countdown bar until the warning time",
			EnvVar:      sharedcommon.ProgressEnv,
			Destination: &progress,
		},
		cli.StringFlag{
			Name:        "event-source",
			Usage:       "also log to the Windows Event Log under this source",
			EnvVar:      sharedcommon.EventSourceEnv,
			Destination: &eventSource,
		},
	}
)

// Seams replaced by tests.
var (
	newClock       = func() clock.Clock { return clock.NewSystem() }
	newFs          = afero.NewOsFs
	consoleOutput  = func() io.Writer { return os.Stdout }
	signalContext  = setupShutdownHandler
	newExecutor    = defaultExecutor
	platformLogger = eventLogger
	serviceRunner  = runAsService
)

func defaultExecutor(l logger.Logger) scheduler.Executor {
	if dryRun {
		return shutdown.NewDryRun(shutdownCommand, l)
	}
	return shutdown.NewCommand(shutdownCommand, l)
}

// arm is the root action. It validates the positional arguments, waits for
// the uptime gate, resolves the target and monitors it until interrupted.
func arm(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 4 {
		return common.ShowUsage(ctx)
	}
	spec, err := schedule.ParseArgs(args)
	if err != nil {
		return common.PrintErrWithHelp(ctx, err)
	}

	l, err := newRunLogger()
	if err != nil {
		return fmt.Errorf("event log: %w", err)
	}
	defer l.Close()

	clk, fs := newClock(), newFs()
	runner := func(ctx context.Context) error {
		return run(ctx, spec, clk, fs, l)
	}
	if handled, err := serviceRunner(runner, l); handled {
		return err
	}

	rctx, cancel := signalContext()
	defer cancel()

	err = runner(rctx)
	if errors.Is(err, context.Canceled) {
		l.Info("Interrupted, exiting")
		return nil
	}
	return err
}

func newRunLogger() (logger.Logger, error) {
	debug := os.Getenv(sharedcommon.DebugEnv) != ""
	console := logger.NewStandardLogger(log.New(consoleOutput(), "", log.LstdFlags), debug)
	platform, err := platformLogger(eventSource)
	if err != nil {
		return nil, err
	}
	return logger.NewMultiLogger(console, platform), nil
}

func run(ctx context.Context, spec schedule.Spec, clk clock.Clock, fs afero.Fs, l logger.Logger) error {
	j := journal.New(fs, logDir, clk)
	record(j, l, "Invoked at: "+clk.Now().Format(journalTimeLayout))
	l.Info("Scheduling %s", spec)

	if spec.UptimeGated() {
		if err := scheduler.AwaitUptime(ctx, clk, spec.MinUptime, pollInterval, l); err != nil {
			return err
		}
	}

	now := clk.Now()
	target := schedule.Resolve(now, spec)
	l.Info("Action at %s, warning at %s",
		target.ActionTime.Format(journalTimeLayout),
		target.WarningTime.Format(journalTimeLayout),
	)
	record(j, l, "Five minute user warning will be issued at: "+target.WarningTime.Format(journalTimeLayout))

	opts := scheduler.Options{
		PollInterval: pollInterval,
		Repeat:       repeat,
	}
	if progress {
		cd := newCountdown(consoleOutput(), now, target)
		defer cd.Stop()
		opts.OnTick = cd.Update
	}
	return scheduler.New(clk, newExecutor(l), l, opts).Run(ctx, spec.Action, target)
}

// record appends a line to the journal. Failures are reported and the run
// continues without the audit line.
func record(j *journal.Journal, l logger.Logger, line string) {
	if err := j.AppendLine(line); err != nil {
		fmt.Fprintln(consoleOutput(), "Unable to create or access log directory.")
		l.Warning("%v", err)
	}
}
