// Package cluster requests warehouse cluster creation and records a
// point-in-time snapshot of the result.
package cluster

import (
	"fmt"
	"time"

	"github.com/dwhops/dwhctl/internal/platform/redshift"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

// Provisioner creates the warehouse cluster.
type Provisioner struct{}

// NewProvisioner creates a new cluster provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the phase name.
func (p *Provisioner) Name() string { return "cluster" }

// Provision requests cluster creation using the role ARN resolved by the
// role phase, then describes the cluster once for operator confirmation.
// There is no wait loop; the snapshot usually reads "creating".
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if ctx.State.RoleARN == "" {
		return fmt.Errorf("role ARN not resolved; role phase must run first")
	}

	w := ctx.Config.Warehouse
	spec := redshift.ClusterSpec{
		ClusterID:      w.ClusterID,
		ClusterType:    w.ClusterType,
		NodeType:       w.NodeType,
		NumNodes:       int32(w.NumNodes), // #nosec G115 -- validated >= 1
		DBName:         w.DBName,
		MasterUsername: w.MasterUsername,
		MasterPassword: w.MasterPassword,
		RoleARN:        ctx.State.RoleARN,
	}

	ctx.Observer.Event(provisioning.Event{
		Type:      provisioning.EventResourceCreating,
		Phase:     p.Name(),
		Resource:  w.ClusterID,
		Timestamp: time.Now(),
	})

	created, err := ctx.Warehouse.Create(ctx, spec)
	if err != nil {
		return err
	}
	ctx.State.ClusterCreated = created

	eventType := provisioning.EventResourceCreated
	if !created {
		eventType = provisioning.EventResourceExists
	}
	ctx.Observer.Event(provisioning.Event{
		Type:      eventType,
		Phase:     p.Name(),
		Resource:  w.ClusterID,
		Timestamp: time.Now(),
	})

	details, err := ctx.Warehouse.Describe(ctx, w.ClusterID)
	if err != nil {
		return err
	}
	ctx.State.Cluster = details
	ctx.Observer.Printf("[cluster] %s status: %s", details.Identifier, details.Status)

	return nil
}
