// Command flowjunit converts Flow type-check reports into JUnit XML.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/flowjunit/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors have already been reported by the command.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "flowjunit: %v\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
