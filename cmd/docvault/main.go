package main

import (
	"os"

	"github.com/forge-labs/docvault/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
