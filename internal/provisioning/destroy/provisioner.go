// Package destroy handles warehouse teardown.
//
// Teardown runs in reverse dependency order: the cluster deletion request
// goes first, then the storage policy is detached from the role, then the
// role itself is deleted (the provider refuses to delete a role with
// policies still attached). Every step is attempted even when an earlier
// one fails, and the failures are returned together, so one stuck resource
// never strands the rest.
package destroy

import (
	"errors"
	"fmt"
	"time"

	"github.com/dwhops/dwhctl/internal/platform/iam"
	"github.com/dwhops/dwhctl/internal/platform/redshift"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

// Provisioner handles warehouse destruction.
type Provisioner struct{}

// NewProvisioner creates a new destroy provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the phase name.
func (p *Provisioner) Name() string { return "destroy" }

// Provision deletes the cluster, detaches the storage policy, and deletes
// the role. Resources that are already gone are reported and skipped, so
// a re-run after a partial failure converges. The final snapshot is
// always skipped; data is discarded, not archived.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	clusterID := ctx.Config.Warehouse.ClusterID
	roleName := ctx.Config.Warehouse.RoleName

	var errs []error

	p.event(ctx, provisioning.EventResourceDeleting, clusterID)
	err := ctx.Warehouse.Delete(ctx, clusterID, true)
	switch {
	case err == nil:
		p.event(ctx, provisioning.EventResourceDeleted, clusterID)
	case redshift.IsNotFound(err):
		p.event(ctx, provisioning.EventResourceAbsent, clusterID)
	default:
		errs = append(errs, fmt.Errorf("delete cluster %q: %w", clusterID, err))
	}

	err = ctx.Roles.DetachPolicy(ctx, roleName, iam.S3ReadOnlyPolicyARN)
	switch {
	case err == nil:
		ctx.Observer.Printf("[destroy] detached %s from %s", iam.S3ReadOnlyPolicyARN, roleName)
	case iam.IsNotFound(err):
		ctx.Observer.Printf("[destroy] policy already detached from %s", roleName)
	default:
		errs = append(errs, fmt.Errorf("detach policy from role %q: %w", roleName, err))
	}

	p.event(ctx, provisioning.EventResourceDeleting, roleName)
	err = ctx.Roles.DeleteRole(ctx, roleName)
	switch {
	case err == nil:
		p.event(ctx, provisioning.EventResourceDeleted, roleName)
	case iam.IsNotFound(err):
		p.event(ctx, provisioning.EventResourceAbsent, roleName)
	default:
		errs = append(errs, fmt.Errorf("delete role %q: %w", roleName, err))
	}

	return errors.Join(errs...)
}

func (p *Provisioner) event(ctx *provisioning.Context, eventType provisioning.EventType, resource string) {
	ctx.Observer.Event(provisioning.Event{
		Type:      eventType,
		Phase:     p.Name(),
		Resource:  resource,
		Timestamp: time.Now(),
	})
}
