package commands

import (
	"github.com/spf13/cobra"

	"github.com/dwhops/dwhctl/cmd/dwhctl/handlers"
)

// Status returns the status command.
func Status() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the cluster's current descriptive record",
		Long: `Status prints a single point-in-time snapshot of the cluster: its
provider-reported status, endpoint, node layout, and attached IAM roles.

There is no watch mode; re-run the command until the status reads
"available".

Example:
  dwhctl status -c dwh.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to warehouse configuration file")

	return cmd
}
