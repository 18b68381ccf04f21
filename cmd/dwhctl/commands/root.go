// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the dwhctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dwhctl",
		Short: "Provision an AWS Redshift data warehouse",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Up())
	cmd.AddCommand(Status())
	cmd.AddCommand(Down())

	// Utility commands
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
