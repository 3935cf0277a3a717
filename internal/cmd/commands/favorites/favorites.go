package favorites

import (
	"github.com/mitchellh/cli"

	"github.com/forge-labs/docvault/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage your favorites list"
}

func (c *Command) Help() string {
	return `Usage: docvault favorites <subcommand> [options]

  This command groups subcommands for the caller's server-side favorites
  list.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
