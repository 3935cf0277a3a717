package objects

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type StatusCommand struct {
	*base.Command

	flagConfig  string
	flagType    int
	flagID      int
	flagVersion int
}

func (c *StatusCommand) Synopsis() string {
	return "Show an object's checkout status"
}

func (c *StatusCommand) Help() string {
	return `Usage: docvault objects status [options]

  Prints the checkout status of an object version. Without -version the
  newest version is consulted.` +
		c.Flags().Help()
}

func (c *StatusCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("status", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")
	f.IntVar(&c.flagVersion, "version", -1, "Version number; omit for the newest version.")

	return f
}

func (c *StatusCommand) Run(args []string) int {
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

	ctx := context.Background()
	id := vault.ObjID{Type: c.flagType, ID: c.flagID}

	var status *vault.CheckoutStatus
	if c.flagVersion >= 0 {
		status, err = client.Objects.GetVersionCheckoutStatus(ctx,
			vault.ObjVer{ObjID: id, Version: c.flagVersion})
	} else {
		status, err = client.Objects.GetCheckoutStatus(ctx, id)
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error getting checkout status: %v", err))
		return 1
	}

	if status == nil {
		ui.Output("no checkout status reported")
		return 0
	}
	ui.Output(status.String())
	return 0
}
