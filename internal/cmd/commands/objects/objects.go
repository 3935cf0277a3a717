package objects

import (
	"github.com/mitchellh/cli"

	"github.com/forge-labs/docvault/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Operate on vault objects"
}

func (c *Command) Help() string {
	return `Usage: docvault objects <subcommand> [options]

  This command groups subcommands for creating objects and managing their
  checkout, deleted state, and version history.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
