package cmd

import (
	"bufio"
	"os"

	"github.com/mitchellh/cli"

	"ekey-bionyx/internal/version"
	"ekey-bionyx/pkg/log"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := args[0]

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
		Output:   log.OutputStderr,
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands(logger, ui),
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}
