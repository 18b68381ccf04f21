package commands

import (
	"github.com/spf13/cobra"

	"github.com/dwhops/dwhctl/cmd/dwhctl/handlers"
)

// Doctor returns the doctor command.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run preflight checks against the configuration",
		Long: `Doctor validates the configuration and reports the current provider
state: whether the IAM role and cluster already exist, and whether the
configured source data bucket is readable with the supplied credentials.

Example:
  dwhctl doctor -c dwh.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to warehouse configuration file")

	return cmd
}
