package favorites

import (
	"context"
	"flag"
	"fmt"

	"github.com/forge-labs/docvault/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagConfig string
}

func (c *ListCommand) Synopsis() string {
	return "List your favorites"
}

func (c *ListCommand) Help() string {
	return `Usage: docvault favorites list [options]

  Prints your favorites list in the order the server returns it.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")

	return f
}

func (c *ListCommand) Run(args []string) int {
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

	favorites, err := client.Favorites.ListFavorites(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error listing favorites: %v", err))
		return 1
	}

	return c.OutputJSON(favorites)
}
