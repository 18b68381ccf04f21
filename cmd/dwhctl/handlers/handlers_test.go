package handlers

import (
	"context"
	"fmt"

	"github.com/dwhops/dwhctl/internal/config"
	"github.com/dwhops/dwhctl/internal/platform/redshift"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

// testConfig is a fully valid configuration used across handler tests.
func testConfig() *config.Config {
	return &config.Config{
		AWS: config.AWSConfig{
			Key:    "AKIATEST",
			Secret: "secret",
			Region: "us-west-2",
		},
		Warehouse: config.WarehouseConfig{
			RoleName:       "dwh-role",
			ClusterID:      "dwh-cluster",
			ClusterType:    config.ClusterTypeMultiNode,
			NodeType:       "dc2.large",
			NumNodes:       4,
			DBName:         "dwh",
			MasterUsername: "admin",
			MasterPassword: "Passw0rd",
		},
	}
}

// fakeRoles implements provisioning.RoleManager for handler tests.
type fakeRoles struct {
	arn    string
	arnErr error
}

func (f *fakeRoles) EnsureRole(_ context.Context, _ string) (bool, error) { return true, nil }
func (f *fakeRoles) AttachPolicy(_ context.Context, _, _ string) error    { return nil }
func (f *fakeRoles) RoleARN(_ context.Context, _ string) (string, error)  { return f.arn, f.arnErr }
func (f *fakeRoles) DetachPolicy(_ context.Context, _, _ string) error    { return nil }
func (f *fakeRoles) DeleteRole(_ context.Context, _ string) error         { return nil }

// fakeWarehouse implements provisioning.WarehouseManager for handler tests.
type fakeWarehouse struct {
	details     *redshift.ClusterDetails
	describeErr error
}

func (f *fakeWarehouse) Create(_ context.Context, _ redshift.ClusterSpec) (bool, error) {
	return true, nil
}

func (f *fakeWarehouse) Describe(_ context.Context, _ string) (*redshift.ClusterDetails, error) {
	return f.details, f.describeErr
}

func (f *fakeWarehouse) Delete(_ context.Context, _ string, _ bool) error { return nil }

// stubPhase is a provisioning phase with a canned result.
type stubPhase struct {
	name string
	err  error
	ran  *int
}

func (p *stubPhase) Name() string { return p.name }

func (p *stubPhase) Provision(_ *provisioning.Context) error {
	if p.ran != nil {
		*p.ran++
	}
	return p.err
}

// stubManagers points newManagers at the given fakes.
func stubManagers(roles provisioning.RoleManager, warehouse provisioning.WarehouseManager) func(context.Context, *config.Config) (provisioning.RoleManager, provisioning.WarehouseManager, error) {
	return func(_ context.Context, _ *config.Config) (provisioning.RoleManager, provisioning.WarehouseManager, error) {
		return roles, warehouse, nil
	}
}

// stubLoadConfig points loadConfigFile at a canned config.
func stubLoadConfig(cfg *config.Config) func(string) (*config.Config, error) {
	return func(_ string) (*config.Config, error) {
		if cfg == nil {
			return nil, fmt.Errorf("config not found")
		}
		return cfg, nil
	}
}
