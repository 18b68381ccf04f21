// Package role creates the IAM role the warehouse cluster assumes for
// read access to S3 and resolves its ARN for the cluster phase.
package role

import (
	"fmt"
	"time"

	"github.com/dwhops/dwhctl/internal/platform/iam"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

// Provisioner creates the warehouse IAM role.
type Provisioner struct{}

// NewProvisioner creates a new role provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the phase name.
func (p *Provisioner) Name() string { return "role" }

// Provision creates the role, attaches the read-only storage policy, and
// resolves the role ARN into the shared state.
//
// An already-existing role is reused. Any other creation failure aborts
// the run; continuing would hand the cluster phase an unresolved role
// reference.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	name := ctx.Config.Warehouse.RoleName

	ctx.Observer.Event(provisioning.Event{
		Type:      provisioning.EventResourceCreating,
		Phase:     p.Name(),
		Resource:  name,
		Timestamp: time.Now(),
	})

	created, err := ctx.Roles.EnsureRole(ctx, name)
	if err != nil {
		return err
	}
	ctx.State.RoleCreated = created

	eventType := provisioning.EventResourceCreated
	if !created {
		eventType = provisioning.EventResourceExists
	}
	ctx.Observer.Event(provisioning.Event{
		Type:      eventType,
		Phase:     p.Name(),
		Resource:  name,
		Timestamp: time.Now(),
	})

	// Attach before resolving the ARN: the cluster phase must never see a
	// role that cannot yet read the source data.
	if err := ctx.Roles.AttachPolicy(ctx, name, iam.S3ReadOnlyPolicyARN); err != nil {
		return err
	}
	ctx.Observer.Printf("[role] attached %s", iam.S3ReadOnlyPolicyARN)

	arn, err := ctx.Roles.RoleARN(ctx, name)
	if err != nil {
		return err
	}
	if arn == "" {
		return fmt.Errorf("role %q resolved to an empty ARN", name)
	}
	ctx.State.RoleARN = arn
	ctx.Observer.Printf("[role] resolved ARN %s", arn)

	return nil
}
