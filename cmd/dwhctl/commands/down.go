package commands

import (
	"github.com/spf13/cobra"

	"github.com/dwhops/dwhctl/cmd/dwhctl/handlers"
)

// Down returns the down command.
//
// The down command removes the warehouse resources in reverse dependency
// order: cluster first, then the policy attachment, then the role.
func Down() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Delete the Redshift cluster and IAM role",
		Long: `Down removes all warehouse resources:

  1. Request cluster deletion, skipping the final snapshot
  2. Detach the AmazonS3ReadOnlyAccess policy from the role
  3. Delete the role

Every step is attempted even when an earlier one fails; the combined
error lists each resource that still needs cleanup, and re-running the
command converges. Resources that are already gone are skipped.

Example:
  dwhctl down -c dwh.yaml

WARNING: The final snapshot is skipped. All warehouse data is lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Down(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to warehouse configuration file")

	return cmd
}
