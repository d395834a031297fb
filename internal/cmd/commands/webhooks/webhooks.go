package webhooks

import (
	"context"
	"fmt"

	"github.com/mitchellh/cli"

	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/pkg/bionyx"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage function webhooks"
}

func (c *Command) Help() string {
	return `Usage: bionyx webhooks <subcommand> [options] [args]

  This command groups subcommands for reading and changing the function
  webhooks of a system. Creating, updating and deleting a webhook has to be
  confirmed by the account owner in the bionyx app; until then the webhook
  reports a pending modification state.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// common holds the flags and setup shared by the webhook subcommands.
type common struct {
	*base.Command

	flagConfig string
	flagSystem string
}

func (c *common) addFlags(f *base.FlagSet) {
	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.StringVar(&c.flagSystem, "system", "", "System id. May be omitted when the account has a single system.")
}

// system loads the config and resolves the target system. Errors are reported
// on the UI; ok is false when the command should exit.
func (c *common) system(ctx context.Context) (*bionyx.System, bool) {
	cfg, err := c.Setup(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return nil, false
	}

	api, err := c.API(ctx, cfg)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return nil, false
	}

	system, err := base.ResolveSystem(ctx, api, c.flagSystem)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error resolving system: %v", err))
		return nil, false
	}
	return system, true
}

func (c *common) print(v any) int {
	if err := c.Print(v); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}

func NewListCommand(b *base.Command) *ListCommand {
	return &ListCommand{common: common{Command: b}}
}

func NewGetCommand(b *base.Command) *GetCommand {
	return &GetCommand{common: common{Command: b}}
}

func NewAddCommand(b *base.Command) *AddCommand {
	return &AddCommand{common: common{Command: b}}
}

func NewUpdateCommand(b *base.Command) *UpdateCommand {
	return &UpdateCommand{common: common{Command: b}}
}

func NewRenameCommand(b *base.Command) *RenameCommand {
	return &RenameCommand{common: common{Command: b}}
}

func NewDeleteCommand(b *base.Command) *DeleteCommand {
	return &DeleteCommand{common: common{Command: b}}
}

func NewRefreshCommand(b *base.Command) *RefreshCommand {
	return &RefreshCommand{common: common{Command: b}}
}
