package objects

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type CheckOutCommand struct {
	*base.Command

	flagConfig string
	flagType   int
	flagID     int
}

func (c *CheckOutCommand) Synopsis() string {
	return "Check an object out to yourself"
}

func (c *CheckOutCommand) Help() string {
	return `Usage: docvault objects checkout [options]

  Checks the newest version of an object out to the calling user and
  prints the resulting version.` +
		c.Flags().Help()
}

func (c *CheckOutCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("checkout", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")

	return f
}

func (c *CheckOutCommand) Run(args []string) int {
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

	ver, err := client.Objects.CheckOut(context.Background(),
		vault.ObjID{Type: c.flagType, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error checking out object: %v", err))
		return 1
	}

	return c.OutputJSON(ver)
}
