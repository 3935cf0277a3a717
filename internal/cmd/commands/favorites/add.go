package favorites

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type AddCommand struct {
	*base.Command

	flagConfig string
	flagType   int
	flagID     int
}

func (c *AddCommand) Synopsis() string {
	return "Add an object to your favorites"
}

func (c *AddCommand) Help() string {
	return `Usage: docvault favorites add [options]

  Adds an object to your favorites list and prints it with its favorite
  metadata.` +
		c.Flags().Help()
}

func (c *AddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")

	return f
}

func (c *AddCommand) Run(args []string) int {
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

	ext, err := client.Favorites.AddToFavorites(context.Background(),
		vault.ObjID{Type: c.flagType, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error adding favorite: %v", err))
		return 1
	}

	return c.OutputJSON(ext)
}
