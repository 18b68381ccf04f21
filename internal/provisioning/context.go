package provisioning

import (
	"context"

	"github.com/dwhops/dwhctl/internal/config"
	"github.com/dwhops/dwhctl/internal/platform/redshift"
)

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Role results (populated by the role phase)
	RoleCreated bool   // false when the role already existed
	RoleARN     string // resolved via GetRole, required for cluster creation

	// Cluster results (populated by the cluster phase)
	ClusterCreated bool // false when the cluster already existed
	Cluster        *redshift.ClusterDetails
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config    *config.Config
	State     *State
	Roles     RoleManager
	Warehouse WarehouseManager
	Observer  Observer
}

// NewContext creates a new provisioning context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	roles RoleManager,
	warehouse WarehouseManager,
) *Context {
	return &Context{
		Context:   ctx,
		Config:    cfg,
		State:     NewState(),
		Roles:     roles,
		Warehouse: warehouse,
		Observer:  NewConsoleObserver(),
	}
}
