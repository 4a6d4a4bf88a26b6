package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/warpdl/schedreboot/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

var osExit = os.Exit

func main() {
	osExit(runMain(os.Args, func(args []string) error {
		return cmd.Execute(args, cmd.BuildArgs{
			Version:   version,
			Commit:    commit,
			Date:      date,
			BuildType: buildType,
		})
	}))
}

// runMain executes the CLI and maps its error to an exit code. Usage errors
// have already been printed along with the help text.
func runMain(args []string, execute func([]string) error) int {
	err := execute(args)
	if err == nil {
		return 0
	}
	if !errors.Is(err, cmd.ErrUsage) {
		fmt.Printf("schedreboot: %s\n", err.Error())
	}
	return 1
}
