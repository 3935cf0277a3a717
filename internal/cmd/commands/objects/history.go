package objects

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type HistoryCommand struct {
	*base.Command

	flagConfig string
	flagType   int
	flagID     int
}

func (c *HistoryCommand) Synopsis() string {
	return "List an object's version history"
}

func (c *HistoryCommand) Help() string {
	return `Usage: docvault objects history [options]

  Prints the retained versions of an object in the order the server
  returns them. The server may omit intermediate versions.` +
		c.Flags().Help()
}

func (c *HistoryCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("history", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")

	return f
}

func (c *HistoryCommand) Run(args []string) int {
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

	history, err := client.Objects.GetHistory(context.Background(),
		vault.ObjID{Type: c.flagType, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error getting history: %v", err))
		return 1
	}

	return c.OutputJSON(history)
}
