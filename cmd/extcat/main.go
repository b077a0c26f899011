// Package main is the entry point for the extcat CLI application.
package main

import (
	"os"

	"github.com/wexinc/extcat/cmd/extcat/cmd"
)

// Version information - will be set by build flags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	os.Exit(cmd.Execute())
}
