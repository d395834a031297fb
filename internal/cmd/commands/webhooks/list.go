package webhooks

import (
	"context"
	"flag"
	"fmt"

	"ekey-bionyx/internal/cmd/base"
)

type ListCommand struct {
	common
}

func (c *ListCommand) Synopsis() string {
	return "List the function webhooks of a system"
}

func (c *ListCommand) Help() string {
	return `Usage: bionyx webhooks list [options]` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	c.addFlags(f)
	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx := context.Background()
	system, ok := c.system(ctx)
	if !ok {
		return 1
	}

	webhooks, err := system.GetWebhooks(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing webhooks: %v", err))
		return 1
	}
	return c.print(base.NewWebhookViews(webhooks))
}

type GetCommand struct {
	common
}

func (c *GetCommand) Synopsis() string {
	return "Show one function webhook"
}

func (c *GetCommand) Help() string {
	return `Usage: bionyx webhooks get [options] <webhook-id>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ContinueOnError))
	c.addFlags(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one webhook id")
		return 1
	}

	ctx := context.Background()
	system, ok := c.system(ctx)
	if !ok {
		return 1
	}

	w, err := system.GetWebhook(ctx, f.Arg(0))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error getting webhook: %v", err))
		return 1
	}
	return c.print(base.NewWebhookView(w))
}
