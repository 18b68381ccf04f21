package cluster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwhops/dwhctl/internal/config"
	"github.com/dwhops/dwhctl/internal/platform/redshift"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

type fakeWarehouse struct {
	calls []string

	createdSpec   redshift.ClusterSpec
	createCreated bool
	createErr     error

	details     *redshift.ClusterDetails
	describeErr error
}

func (f *fakeWarehouse) Create(_ context.Context, spec redshift.ClusterSpec) (bool, error) {
	f.calls = append(f.calls, "Create")
	f.createdSpec = spec
	return f.createCreated, f.createErr
}

func (f *fakeWarehouse) Describe(_ context.Context, clusterID string) (*redshift.ClusterDetails, error) {
	f.calls = append(f.calls, "Describe:"+clusterID)
	return f.details, f.describeErr
}

func (f *fakeWarehouse) Delete(_ context.Context, clusterID string, _ bool) error {
	f.calls = append(f.calls, "Delete:"+clusterID)
	return nil
}

type nopObserver struct {
	events []provisioning.Event
}

func (o *nopObserver) Printf(string, ...interface{}) {}

func (o *nopObserver) Event(event provisioning.Event) {
	o.events = append(o.events, event)
}

func newTestContext(warehouse *fakeWarehouse, roleARN string) *provisioning.Context {
	return &provisioning.Context{
		Context: context.Background(),
		Config: &config.Config{
			Warehouse: config.WarehouseConfig{
				ClusterID:      "dwh-cluster",
				ClusterType:    config.ClusterTypeMultiNode,
				NodeType:       "dc2.large",
				NumNodes:       4,
				DBName:         "dwh",
				MasterUsername: "admin",
				MasterPassword: "Passw0rd",
				RoleName:       "dwh-role",
			},
		},
		State:     &provisioning.State{RoleARN: roleARN},
		Warehouse: warehouse,
		Observer:  &nopObserver{},
	}
}

func TestProvision_CreatesClusterFromConfig(t *testing.T) {
	t.Parallel()

	warehouse := &fakeWarehouse{
		createCreated: true,
		details: &redshift.ClusterDetails{
			Identifier: "dwh-cluster",
			Status:     "creating",
		},
	}
	ctx := newTestContext(warehouse, "arn:aws:iam::123456789012:role/dwh-role")

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Create", "Describe:dwh-cluster"}, warehouse.calls)

	spec := warehouse.createdSpec
	assert.Equal(t, "dwh-cluster", spec.ClusterID)
	assert.Equal(t, config.ClusterTypeMultiNode, spec.ClusterType)
	assert.Equal(t, "dc2.large", spec.NodeType)
	assert.Equal(t, int32(4), spec.NumNodes)
	assert.Equal(t, "dwh", spec.DBName)
	assert.Equal(t, "admin", spec.MasterUsername)
	assert.Equal(t, "Passw0rd", spec.MasterPassword)
	assert.Equal(t, "arn:aws:iam::123456789012:role/dwh-role", spec.RoleARN)

	assert.True(t, ctx.State.ClusterCreated)
	require.NotNil(t, ctx.State.Cluster)
	assert.Equal(t, "creating", ctx.State.Cluster.Status)
}

func TestProvision_RequiresResolvedRoleARN(t *testing.T) {
	t.Parallel()

	warehouse := &fakeWarehouse{}
	ctx := newTestContext(warehouse, "")

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role ARN not resolved")
	assert.Empty(t, warehouse.calls, "no API call may happen without a role ARN")
}

func TestProvision_ExistingClusterIsReused(t *testing.T) {
	t.Parallel()

	warehouse := &fakeWarehouse{
		createCreated: false,
		details: &redshift.ClusterDetails{
			Identifier: "dwh-cluster",
			Status:     "available",
		},
	}
	ctx := newTestContext(warehouse, "arn:aws:iam::123456789012:role/dwh-role")
	obs := ctx.Observer.(*nopObserver)

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)

	assert.False(t, ctx.State.ClusterCreated)

	var types []provisioning.EventType
	for _, e := range obs.events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, provisioning.EventResourceExists)
	assert.NotContains(t, types, provisioning.EventResourceCreated)
}

func TestProvision_CreateFailureAborts(t *testing.T) {
	t.Parallel()

	warehouse := &fakeWarehouse{createErr: errors.New("quota exceeded")}
	ctx := newTestContext(warehouse, "arn:aws:iam::123456789012:role/dwh-role")

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.Equal(t, []string{"Create"}, warehouse.calls)
	assert.Nil(t, ctx.State.Cluster)
}

func TestProvision_DescribeFailureAborts(t *testing.T) {
	t.Parallel()

	warehouse := &fakeWarehouse{
		createCreated: true,
		describeErr:   errors.New("service unavailable"),
	}
	ctx := newTestContext(warehouse, "arn:aws:iam::123456789012:role/dwh-role")

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.True(t, ctx.State.ClusterCreated, "creation succeeded before describe failed")
	assert.Nil(t, ctx.State.Cluster)
}

func TestName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "cluster", NewProvisioner().Name())
}
