package webhooks

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/pkg/bionyx"
)

type DeleteCommand struct {
	common
}

func (c *DeleteCommand) Synopsis() string {
	return "Request deletion of function webhooks"
}

func (c *DeleteCommand) Help() string {
	return `Usage: bionyx webhooks delete [options] <webhook-id>...

  Requests deletion of every given webhook. Each deletion has to be confirmed
  in the app. Webhooks that fail are reported together at the end.` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	c.addFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() == 0 {
		c.UI.Error("expected at least one webhook id")
		return 1
	}

	ctx := context.Background()
	system, ok := c.system(ctx)
	if !ok {
		return 1
	}

	var (
		result  *multierror.Error
		deleted []*bionyx.Webhook
	)
	for _, id := range f.Args() {
		w, err := system.GetWebhook(ctx, id)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", id, err))
			continue
		}
		if err := w.Delete(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", id, err))
			continue
		}
		deleted = append(deleted, w)
	}

	code := c.print(base.NewWebhookViews(deleted))
	if err := result.ErrorOrNil(); err != nil {
		c.UI.Error(fmt.Sprintf("error deleting webhooks: %v", err))
		return 1
	}
	return code
}
