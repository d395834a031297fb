package webhooks

import (
	"context"
	"flag"
	"fmt"

	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/pkg/bionyx"
)

type RenameCommand struct {
	common

	flagFunctionName string
	flagLocationName string
}

func (c *RenameCommand) Synopsis() string {
	return "Change the function or location name of a webhook"
}

func (c *RenameCommand) Help() string {
	return `Usage: bionyx webhooks rename [options] <webhook-id>

  Renames take effect immediately and need no confirmation.` + c.Flags().Help()
}

func (c *RenameCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("rename", flag.ContinueOnError))
	c.addFlags(f)
	f.StringVar(&c.flagFunctionName, "function-name", "", "New function name")
	f.StringVar(&c.flagLocationName, "location-name", "", "New location name")
	return f
}

func (c *RenameCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one webhook id")
		return 1
	}
	if c.flagFunctionName == "" && c.flagLocationName == "" {
		c.UI.Error("at least one of -function-name and -location-name is required")
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

	rename := bionyx.WebhookRename{FunctionName: c.flagFunctionName, LocationName: c.flagLocationName}
	if err := w.UpdateName(ctx, rename); err != nil {
		c.UI.Error(fmt.Sprintf("error renaming webhook: %v", err))
		return 1
	}
	if err := w.GetUpdate(ctx); err != nil {
		c.UI.Error(fmt.Sprintf("error reloading webhook: %v", err))
		return 1
	}
	return c.print(base.NewWebhookView(w))
}
