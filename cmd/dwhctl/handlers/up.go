package handlers

import (
	"context"
	"fmt"
	"log"

	awsplatform "github.com/dwhops/dwhctl/internal/platform/aws"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

// Up handles the up command.
//
// It provisions the warehouse in two phases: first the IAM role with its
// read-only storage policy, then the cluster referencing the role's ARN.
// The run ends with a point-in-time status snapshot; the cluster keeps
// provisioning on the provider side after the process exits.
func Up(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	log.Printf("Provisioning warehouse: %s", cfg.Warehouse.ClusterID)

	roles, warehouse, err := newManagers(ctx, cfg)
	if err != nil {
		return err
	}

	pCtx := newProvisioningContext(ctx, cfg, roles, warehouse)
	phases := []provisioning.Phase{newRolePhase(), newClusterPhase()}

	if err := provisioning.RunPhases(pCtx, phases); err != nil {
		if awsplatform.IsTransient(err) {
			log.Printf("The provider reported a transient failure; re-running `dwhctl up` may succeed.")
		}
		return fmt.Errorf("provisioning failed: %w", err)
	}

	if pCtx.State.Cluster != nil {
		fmt.Print(renderClusterDetails(pCtx.State.Cluster))
	}

	log.Printf("Warehouse %s requested; run `dwhctl status` to watch for \"available\"", cfg.Warehouse.ClusterID)
	return nil
}
