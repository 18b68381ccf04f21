package commands

import (
	"github.com/spf13/cobra"

	"github.com/dwhops/dwhctl/cmd/dwhctl/handlers"
)

// Init returns the init command.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a warehouse configuration interactively",
		Long: `Init walks through the warehouse parameters (cluster identifier,
region, node layout, database credentials) and writes a configuration
file. AWS credentials are never written; the other commands read them
from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY.

Example:
  dwhctl init -o dwh.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", DefaultConfigPath, "Path to write the configuration file")

	return cmd
}
