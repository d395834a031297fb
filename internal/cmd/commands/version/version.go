package version

import (
	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: bionyx version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("bionyx " + version.Version)
	return 0
}
