package versioncmd

import (
	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the docvault version"
}

func (c *Command) Help() string {
	return `Usage: docvault version

  Prints the docvault version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
