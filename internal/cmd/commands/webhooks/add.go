package webhooks

import (
	"context"
	"flag"
	"fmt"

	"ekey-bionyx/internal/cmd/base"
)

type AddCommand struct {
	common

	flagFile string
}

func (c *AddCommand) Synopsis() string {
	return "Register a new function webhook"
}

func (c *AddCommand) Help() string {
	return `Usage: bionyx webhooks add [options] -file=webhook.yaml

  Registers the webhook described in the file (YAML or JSON, API field names).
  The webhook stays in state CreateRequested until the account owner confirms
  it in the app.` + c.Flags().Help()
}

func (c *AddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add", flag.ContinueOnError))
	c.addFlags(f)
	f.StringVar(&c.flagFile, "file", "", "(Required) Webhook definition file")
	return f
}

func (c *AddCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	data, err := base.ReadWebhookData(c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading definition: %v", err))
		return 1
	}

	ctx := context.Background()
	system, ok := c.system(ctx)
	if !ok {
		return 1
	}

	w, err := system.AddWebhook(ctx, data)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error adding webhook: %v", err))
		return 1
	}
	c.Log.Infof(ctx, "webhook %s added to system %s", w.ID(), system.ID())
	return c.print(base.NewWebhookView(w))
}

type UpdateCommand struct {
	common

	flagFile string
}

func (c *UpdateCommand) Synopsis() string {
	return "Replace the definition of a function webhook"
}

func (c *UpdateCommand) Help() string {
	return `Usage: bionyx webhooks update [options] -file=webhook.yaml <webhook-id>

  Sends the new definition. The change waits for confirmation in the app, so
  the printed webhook carries the local state UpdateRequested.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ContinueOnError))
	c.addFlags(f)
	f.StringVar(&c.flagFile, "file", "", "(Required) Webhook definition file")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one webhook id")
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	data, err := base.ReadWebhookData(c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading definition: %v", err))
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
	if err := w.Update(ctx, data); err != nil {
		c.UI.Error(fmt.Sprintf("error updating webhook: %v", err))
		return 1
	}
	return c.print(base.NewWebhookView(w))
}
