// Command hillc encrypts and decrypts text and files with a Hill cipher.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/hillc/internal/commands"
	"github.com/idelchi/hillc/internal/config"
)

// version is set at build time.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
