package objects

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type CheckInCommand struct {
	*base.Command

	flagConfig string
	flagType   int
	flagID     int
}

func (c *CheckInCommand) Synopsis() string {
	return "Check an object back in"
}

func (c *CheckInCommand) Help() string {
	return `Usage: docvault objects checkin [options]

  Checks an object back in and prints the resulting version.` +
		c.Flags().Help()
}

func (c *CheckInCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("checkin", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")

	return f
}

func (c *CheckInCommand) Run(args []string) int {
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

	ver, err := client.Objects.CheckIn(context.Background(),
		vault.ObjID{Type: c.flagType, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error checking in object: %v", err))
		return 1
	}

	return c.OutputJSON(ver)
}
