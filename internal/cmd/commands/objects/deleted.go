package objects

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type DeletedCommand struct {
	*base.Command

	flagConfig string
	flagType   int
	flagID     int
}

func (c *DeletedCommand) Synopsis() string {
	return "Show whether an object is marked deleted"
}

func (c *DeletedCommand) Help() string {
	return `Usage: docvault objects deleted [options]

  Prints whether an object is marked deleted on the server.` +
		c.Flags().Help()
}

func (c *DeletedCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("deleted", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")

	return f
}

func (c *DeletedCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	deleted, err := client.Objects.GetDeletedStatus(context.Background(),
		vault.ObjID{Type: c.flagType, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error getting deleted status: %v", err))
		return 1
	}

	if deleted == nil {
		ui.Output("no deleted status reported")
		return 0
	}
	ui.Output(fmt.Sprintf("%t", *deleted))
	return 0
}
