// Package base holds the pieces shared by every CLI command.
package base

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/forge-labs/docvault/internal/config"
	"github.com/forge-labs/docvault/pkg/vault"
)

// ConfigEnvVar is consulted for the config file path when the -config
// flag is not given.
const ConfigEnvVar = "DOCVAULT_CONFIG"

// Command is embedded by all CLI commands to share the logger and UI.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewClient loads the configuration and builds an API client from it.
// An empty configPath falls back to the DOCVAULT_CONFIG environment
// variable.
func (c *Command) NewClient(configPath string) (*vault.Client, error) {
	if configPath == "" {
		configPath = os.Getenv(ConfigEnvVar)
	}
	if configPath == "" {
		return nil, errors.New("no config file: pass -config or set " + ConfigEnvVar)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := c.Log
	if cfg.LogLevel != "" {
		log = c.Log.Named("client")
		log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}

	return vault.NewClient(cfg.Vault(), vault.WithLogger(log))
}

// OutputJSON pretty-prints v to the UI and returns a process exit code.
func (c *Command) OutputJSON(v interface{}) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	c.UI.Output(string(data))
	return 0
}

// FlagSet wraps flag.FlagSet to render option help for command Help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the registered flags as an options block.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}
