package webhooks

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/pkg/bionyx"
)

type RefreshCommand struct {
	common

	flagWait     time.Duration
	flagInterval time.Duration
}

func (c *RefreshCommand) Synopsis() string {
	return "Reload a webhook, optionally until its pending change is confirmed"
}

func (c *RefreshCommand) Help() string {
	return `Usage: bionyx webhooks refresh [options] <webhook-id>

  Reloads the webhook from the service. With -wait the webhook is polled until
  it reports no modification state, it disappears after a confirmed deletion,
  or the wait time runs out.` + c.Flags().Help()
}

func (c *RefreshCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("refresh", flag.ContinueOnError))
	c.addFlags(f)
	f.DurationVar(&c.flagWait, "wait", 0, "How long to wait for a pending change to be confirmed")
	f.DurationVar(&c.flagInterval, "interval", 5*time.Second, "Polling interval used with -wait")
	return f
}

func (c *RefreshCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one webhook id")
		return 1
	}
	if c.flagInterval <= 0 {
		c.UI.Error("interval must be positive")
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

	if c.flagWait > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, c.flagWait)
		defer cancel()

		gone, err := c.waitSettled(waitCtx, w)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error waiting for confirmation: %v", err))
			return 1
		}
		if gone {
			c.UI.Info(fmt.Sprintf("webhook %s was deleted", w.ID()))
			return 0
		}
	}
	return c.print(base.NewWebhookView(w))
}

// waitSettled polls w until no modification is pending. gone reports that the
// webhook no longer exists.
func (c *RefreshCommand) waitSettled(ctx context.Context, w *bionyx.Webhook) (gone bool, err error) {
	ticker := time.NewTicker(c.flagInterval)
	defer ticker.Stop()

	for {
		state, pending := w.ModificationState()
		if !pending {
			return false, nil
		}
		c.Log.Debugf(ctx, "webhook %s still %s", w.ID(), state)

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}

		if err := w.GetUpdate(ctx); err != nil {
			if bionyx.IsStatus(err, http.StatusNotFound) && state == bionyx.DeleteRequested {
				return true, nil
			}
			return false, err
		}
	}
}
