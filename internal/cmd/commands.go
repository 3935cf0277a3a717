package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/internal/cmd/commands/favorites"
	"github.com/forge-labs/docvault/internal/cmd/commands/objects"
	"github.com/forge-labs/docvault/internal/cmd/commands/versioncmd"
)

// Commands is the CLI command registry, populated by initCommands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"objects": func() (cli.Command, error) {
			return &objects.Command{Command: baseCommand}, nil
		},
		"objects create": func() (cli.Command, error) {
			return &objects.CreateCommand{Command: baseCommand}, nil
		},
		"objects checkout": func() (cli.Command, error) {
			return &objects.CheckOutCommand{Command: baseCommand}, nil
		},
		"objects checkin": func() (cli.Command, error) {
			return &objects.CheckInCommand{Command: baseCommand}, nil
		},
		"objects status": func() (cli.Command, error) {
			return &objects.StatusCommand{Command: baseCommand}, nil
		},
		"objects history": func() (cli.Command, error) {
			return &objects.HistoryCommand{Command: baseCommand}, nil
		},
		"objects deleted": func() (cli.Command, error) {
			return &objects.DeletedCommand{Command: baseCommand}, nil
		},
		"favorites": func() (cli.Command, error) {
			return &favorites.Command{Command: baseCommand}, nil
		},
		"favorites add": func() (cli.Command, error) {
			return &favorites.AddCommand{Command: baseCommand}, nil
		},
		"favorites remove": func() (cli.Command, error) {
			return &favorites.RemoveCommand{Command: baseCommand}, nil
		},
		"favorites list": func() (cli.Command, error) {
			return &favorites.ListCommand{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
