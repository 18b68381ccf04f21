package handlers

import (
	"context"
	"fmt"

	"github.com/dwhops/dwhctl/internal/platform/redshift"
)

// Status handles the status command.
//
// It prints a single point-in-time snapshot of the cluster's descriptive
// record. There is no watch mode; operators re-run it until the status
// reads "available".
func Status(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	_, warehouse, err := newManagers(ctx, cfg)
	if err != nil {
		return err
	}

	details, err := warehouse.Describe(ctx, cfg.Warehouse.ClusterID)
	if err != nil {
		if redshift.IsNotFound(err) {
			fmt.Printf("Cluster %q does not exist in %s. Run `dwhctl up` to create it.\n",
				cfg.Warehouse.ClusterID, cfg.AWS.Region)
			return nil
		}
		return err
	}

	fmt.Print(renderClusterDetails(details))
	return nil
}
