// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/dwhops/dwhctl/internal/config"
	awsplatform "github.com/dwhops/dwhctl/internal/platform/aws"
	"github.com/dwhops/dwhctl/internal/platform/iam"
	"github.com/dwhops/dwhctl/internal/platform/redshift"
	"github.com/dwhops/dwhctl/internal/provisioning"
	"github.com/dwhops/dwhctl/internal/provisioning/cluster"
	"github.com/dwhops/dwhctl/internal/provisioning/destroy"
	"github.com/dwhops/dwhctl/internal/provisioning/role"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// newManagers builds the platform managers from configuration.
	newManagers = buildManagers

	// newRolePhase creates the role provisioning phase.
	newRolePhase = func() provisioning.Phase { return role.NewProvisioner() }

	// newClusterPhase creates the cluster provisioning phase.
	newClusterPhase = func() provisioning.Phase { return cluster.NewProvisioner() }

	// newDestroyProvisioner creates the teardown provisioner.
	newDestroyProvisioner = func() provisioning.Phase { return destroy.NewProvisioner() }

	// newProvisioningContext creates a new provisioning context.
	newProvisioningContext = provisioning.NewContext

	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}
)

// buildManagers resolves credentials once and hands back the role and
// warehouse managers, each bound to the configured region.
func buildManagers(ctx context.Context, cfg *config.Config) (provisioning.RoleManager, provisioning.WarehouseManager, error) {
	factory, err := awsplatform.NewFactory(ctx, awsplatform.Credentials{
		Key:    cfg.AWS.Key,
		Secret: cfg.AWS.Secret,
	}, cfg.AWS.Region)
	if err != nil {
		return nil, nil, err
	}

	handles, err := factory.Clients(awsplatform.ServiceIAM, awsplatform.ServiceRedshift)
	if err != nil {
		return nil, nil, err
	}

	iamHandle, ok := handles[0].(*awsplatform.IAMHandle)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected handle type %T for service %q", handles[0], awsplatform.ServiceIAM)
	}
	redshiftHandle, ok := handles[1].(*awsplatform.RedshiftHandle)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected handle type %T for service %q", handles[1], awsplatform.ServiceRedshift)
	}

	return iam.NewClientWithAPI(iamHandle.Client()), redshift.NewClientWithAPI(redshiftHandle.Client()), nil
}
