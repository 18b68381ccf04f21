// Package main is the entry point for the dwhctl CLI.
//
// dwhctl provisions and tears down an AWS Redshift data warehouse: an IAM
// role scoped to the Redshift service with read-only S3 access, and the
// cluster that assumes it. It is stateless operational glue around the
// provider API; the provider owns all resource state.
//
// Commands: init, up, status, down, doctor.
//
// For detailed usage information, run:
//
//	dwhctl --help
package main

import (
	"fmt"
	"os"

	"github.com/dwhops/dwhctl/cmd/dwhctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
