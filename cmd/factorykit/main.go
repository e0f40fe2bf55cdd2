// Command factorykit resolves and drives registered creators from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/randalmurphal/factorykit/internal/cli"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := cli.Execute(fmt.Sprintf("%s (commit: %s)", version, commit)); err != nil {
		os.Exit(1)
	}
}
