package handlers

import (
	"context"
	"fmt"
	"log"

	awsplatform "github.com/dwhops/dwhctl/internal/platform/aws"
)

// Down handles the down command.
//
// It requests cluster deletion (skipping the final snapshot), detaches the
// storage policy from the role, and deletes the role. All three steps are
// attempted even when one fails; the combined error names every resource
// that still needs cleanup, and a re-run converges on an empty account.
func Down(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	log.Printf("Destroying warehouse: %s", cfg.Warehouse.ClusterID)

	roles, warehouse, err := newManagers(ctx, cfg)
	if err != nil {
		return err
	}

	pCtx := newProvisioningContext(ctx, cfg, roles, warehouse)
	destroyer := newDestroyProvisioner()

	if err := destroyer.Provision(pCtx); err != nil {
		if awsplatform.IsTransient(err) {
			log.Printf("The provider reported a transient failure; re-running `dwhctl down` may succeed.")
		}
		return fmt.Errorf("destroy failed: %w", err)
	}

	log.Printf("Warehouse %s destroyed", cfg.Warehouse.ClusterID)
	return nil
}
