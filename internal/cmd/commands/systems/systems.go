package systems

import (
	"context"
	"flag"
	"fmt"

	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/pkg/bionyx"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "List the systems the account can access"
}

func (c *Command) Help() string {
	return `Usage: bionyx systems [options]

  Prints every system with its id, ownership flag and function webhook quota.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("systems", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.Setup(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	ctx := context.Background()
	api, err := c.API(ctx, cfg)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	systems, err := api.GetSystems(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing systems: %v", err))
		return 1
	}

	out := make([]bionyx.SystemResponse, 0, len(systems))
	for _, s := range systems {
		out = append(out, s.Snapshot())
	}
	if err := c.Print(out); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
