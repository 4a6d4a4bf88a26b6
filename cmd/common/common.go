// Package common provides the help, version and error printing shared by
// the schedreboot commands.
package common

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"
)

// ErrUsage is returned after usage text and the specific problem have been
// printed. main exits with status 1 without printing it again.
var ErrUsage = errors.New("invalid usage")

// VersionCmdStr holds the formatted version string displayed by the version
// command. It is populated by Execute from build-time information.
var VersionCmdStr string

var (
	showAppHelp     = cli.ShowAppHelp
	showCommandHelp = cli.ShowCommandHelp
)

// Help displays the application help, or the help of the command named by
// the first argument.
func Help(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" || arg == "help" {
		return ShowUsage(ctx)
	}
	if err := showCommandHelp(ctx, arg); err != nil {
		return PrintErrWithHelp(ctx, err)
	}
	return nil
}

// ShowUsage prints the version line and the application help. Arguments
// are not treated as help topics.
func ShowUsage(ctx *cli.Context) error {
	fmt.Printf("%s %s\n", ctx.App.Name, ctx.App.Version)
	return showAppHelp(ctx)
}

// GetVersion prints VersionCmdStr.
func GetVersion(ctx *cli.Context) error {
	fmt.Println(VersionCmdStr)
	return nil
}

// PrintRuntimeErr prints a runtime error as "name: cmd[action]: msg".
// ctx may be nil, in which case the name is taken from os.Args[0].
func PrintRuntimeErr(ctx *cli.Context, cmd, action string, err error) {
	if err == nil {
		fmt.Println("err is nil", "[", cmd, "|", action, "]")
		return
	}
	var name string
	if ctx != nil {
		name = ctx.App.HelpName
	} else {
		name = os.Args[0]
	}
	fmt.Printf("%s: %s[%s]: %s\n", name, cmd, action, err.Error())
}

// PrintErrWithHelp prints the application help followed by err and
// returns ErrUsage.
func PrintErrWithHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(ctx, err, func() {
		if herr := showAppHelp(ctx); herr != nil {
			fmt.Println(herr.Error())
		}
	})
}

// PrintErrWithCmdHelp prints the current command's help followed by err
// and returns ErrUsage.
func PrintErrWithCmdHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(ctx, err, func() {
		if herr := showCommandHelp(ctx, ctx.Command.Name); herr != nil {
			fmt.Println(herr.Error())
		}
	})
}

func printErrWithCallback(ctx *cli.Context, err error, callback func()) error {
	if err == nil {
		return nil
	}
	if strings.ToLower(err.Error()) == "flag: help requested" {
		return Help(ctx)
	}
	callback()
	fmt.Printf("%s: %s\n", ctx.App.HelpName, err.Error())
	return ErrUsage
}

// UsageErrorCallback is the OnUsageError handler for the app and its
// commands.
func UsageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	if ctx.Command.Name != "" {
		return PrintErrWithCmdHelp(ctx, err)
	}
	return PrintErrWithHelp(ctx, err)
}
