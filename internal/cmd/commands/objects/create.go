package objects

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/forge-labs/docvault/internal/cmd/base"
	"github.com/forge-labs/docvault/pkg/vault"
)

type CreateCommand struct {
	*base.Command

	flagConfig     string
	flagObjectType int
	flagTitle      string
	flagClass      int
	flagProperties propertyFlags
}

// propertyFlags collects repeated -property key=value flags.
type propertyFlags map[string]interface{}

func (p *propertyFlags) String() string {
	return fmt.Sprintf("%v", map[string]interface{}(*p))
}

func (p *propertyFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("property must be key=value, got %q", value)
	}
	if *p == nil {
		*p = propertyFlags{}
	}
	(*p)[key] = val
	return nil
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new object"
}

func (c *CreateCommand) Help() string {
	return `Usage: docvault objects create [options]

  Creates a new object of the given type and prints the version the
  server created.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ExitOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the docvault config file.")
	f.IntVar(&c.flagObjectType, "object-type", 0, "Object type ID for the new object.")
	f.StringVar(&c.flagTitle, "title", "", "(Required) Title of the new object.")
	f.IntVar(&c.flagClass, "class", 0, "Class ID within the object type.")
	f.Var(&c.flagProperties, "property",
		"Type-specific property as key=value. May be repeated.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagTitle == "" {
		ui.Error("title flag is required")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	info := &vault.ObjectCreationInfo{
		Title:      c.flagTitle,
		Class:      c.flagClass,
		Properties: c.flagProperties,
	}
	ver, err := client.Objects.CreateNewObject(context.Background(), c.flagObjectType, info)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating object: %v", err))
		return 1
	}

	return c.OutputJSON(ver)
}
