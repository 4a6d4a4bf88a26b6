package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/schedreboot/cmd/common"
	"github.com/warpdl/schedreboot/internal/schedule"
)

var (
	nextCount int

	upcoming = schedule.Upcoming

	nextFlags = []cli.Flag{
		cli.IntFlag{
			Name:        "count, c",
			Usage:       "number of upcoming occurrences to list",
			Value:       defaultNextCount,
			Destination: &nextCount,
		},
	}
)

func next(ctx *cli.Context) error {
	args := ctx.Args()
	if args.First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if len(args) < 3 {
		return common.PrintErrWithCmdHelp(ctx, errors.New("expected <day> <hour> <minute>"))
	}
	spec, err := schedule.ParseTarget(args[0], args[1], args[2])
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	count := nextCount
	if count <= 0 {
		count = defaultNextCount
	}
	if count > maxNextCount {
		count = maxNextCount
	}

	now := newClock().Now()
	target := schedule.Resolve(now, spec)
	fmt.Printf("Target:        %s %02d:%02d (cron %q)\n", spec.Day, spec.Hour, spec.Minute, spec.CronExpr())
	fmt.Printf("Action time:   %s\n", target.ActionTime.Format(journalTimeLayout))
	fmt.Printf("Warning time:  %s\n", target.WarningTime.Format(journalTimeLayout))
	if target.Due(now) {
		fmt.Println("The warning time has passed; a launch now acts immediately.")
	}

	list, err := upcoming(spec, now, count)
	if err != nil {
		return fmt.Errorf("next: %w", err)
	}
	fmt.Println("Upcoming:")
	for _, t := range list {
		fmt.Printf("  %s\n", t.Format(journalTimeLayout))
	}
	return nil
}
