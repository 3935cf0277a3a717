package favorites

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type RemoveCommand struct {
	*base.Command

	flagConfig string
	flagType   int
	flagID     int
}

func (c *RemoveCommand) Synopsis() string {
	return "Remove an object from your favorites"
}

func (c *RemoveCommand) Help() string {
	return `Usage: docvault favorites remove [options]

  Removes an object from your favorites list.` +
		c.Flags().Help()
}

func (c *RemoveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("remove", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagType, "type", 0, "Object type ID.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Object ID.")

	return f
}

func (c *RemoveCommand) Run(args []string) int {
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

	ext, err := client.Favorites.RemoveFromFavorites(context.Background(),
		vault.ObjID{Type: c.flagType, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error removing favorite: %v", err))
		return 1
	}

	return c.OutputJSON(ext)
}
