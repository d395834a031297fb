package cmd

import (
	"github.com/mitchellh/cli"

	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/internal/cmd/commands/systems"
	"ekey-bionyx/internal/cmd/commands/version"
	"ekey-bionyx/internal/cmd/commands/webhooks"
	"ekey-bionyx/pkg/log"
)

// Commands returns the command factories of the bionyx CLI.
func Commands(logger log.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	return CommandsWith(&base.Command{UI: ui, Log: logger})
}

// CommandsWith builds the factories around an existing base command, e.g. one
// with a test HTTP client.
func CommandsWith(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"systems": func() (cli.Command, error) {
			return &systems.Command{Command: b}, nil
		},
		"webhooks": func() (cli.Command, error) {
			return &webhooks.Command{Command: b}, nil
		},
		"webhooks list": func() (cli.Command, error) {
			return webhooks.NewListCommand(b), nil
		},
		"webhooks get": func() (cli.Command, error) {
			return webhooks.NewGetCommand(b), nil
		},
		"webhooks add": func() (cli.Command, error) {
			return webhooks.NewAddCommand(b), nil
		},
		"webhooks update": func() (cli.Command, error) {
			return webhooks.NewUpdateCommand(b), nil
		},
		"webhooks rename": func() (cli.Command, error) {
			return webhooks.NewRenameCommand(b), nil
		},
		"webhooks delete": func() (cli.Command, error) {
			return webhooks.NewDeleteCommand(b), nil
		},
		"webhooks refresh": func() (cli.Command, error) {
			return webhooks.NewRefreshCommand(b), nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
