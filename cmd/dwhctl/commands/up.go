package commands

import (
	"github.com/spf13/cobra"

	"github.com/dwhops/dwhctl/cmd/dwhctl/handlers"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "dwh.yaml"

// Up returns the up command.
//
// The up command provisions the warehouse: it creates the IAM role with a
// Redshift-only trust policy, attaches the read-only storage policy, and
// requests cluster creation referencing the role's ARN.
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Provision the IAM role and Redshift cluster",
		Long: `Up provisions the data warehouse in order:

  1. Create the IAM role (trust policy permits only redshift.amazonaws.com)
  2. Attach the AmazonS3ReadOnlyAccess policy to the role
  3. Resolve the role's ARN
  4. Request cluster creation referencing the role ARN
  5. Print a point-in-time cluster status snapshot

A role or cluster that already exists is reused; any other provider
failure stops the run. Cluster creation takes several minutes on the
provider side; run "dwhctl status" to watch for "available".

Example:
  dwhctl up -c dwh.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to warehouse configuration file")

	return cmd
}
