package provisioning

import (
	"context"

	"github.com/dwhops/dwhctl/internal/platform/redshift"
)

// Phase is a single provisioning step.
type Phase interface {
	// Name returns the phase name for logging.
	Name() string

	// Provision executes the phase against the shared context.
	Provision(ctx *Context) error
}

// RoleManager defines the IAM role operations used by the phases.
// It abstracts the underlying cloud provider API.
type RoleManager interface {
	// EnsureRole creates the role with a Redshift-only trust policy.
	// An already-existing role is reported as created=false, not an error.
	EnsureRole(ctx context.Context, name string) (created bool, err error)

	// AttachPolicy attaches a managed policy to the role.
	AttachPolicy(ctx context.Context, roleName, policyARN string) error

	// RoleARN reads back the role's ARN.
	RoleARN(ctx context.Context, name string) (string, error)

	// DetachPolicy detaches a managed policy from the role.
	DetachPolicy(ctx context.Context, roleName, policyARN string) error

	// DeleteRole deletes the role. Fails while policies remain attached.
	DeleteRole(ctx context.Context, name string) error
}

// WarehouseManager defines the cluster operations used by the phases.
type WarehouseManager interface {
	// Create requests cluster creation. An already-existing cluster is
	// reported as created=false, not an error.
	Create(ctx context.Context, spec redshift.ClusterSpec) (created bool, err error)

	// Describe returns a point-in-time snapshot of the cluster.
	Describe(ctx context.Context, clusterID string) (*redshift.ClusterDetails, error)

	// Delete requests cluster deletion with an explicit final-snapshot
	// choice.
	Delete(ctx context.Context, clusterID string, skipFinalSnapshot bool) error
}
