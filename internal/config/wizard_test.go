package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardResult_ToConfig(t *testing.T) {
	t.Parallel()

	result := &WizardResult{
		ClusterID:      "my-warehouse",
		Region:         "eu-west-1",
		ClusterType:    ClusterTypeMultiNode,
		NodeType:       "dc2.large",
		NumNodes:       4,
		DBName:         "dwh",
		MasterUsername: "dwhadmin",
		MasterPassword: "Passw0rd",
	}

	cfg := result.ToConfig()

	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Empty(t, cfg.AWS.Key, "credentials must never land in the file")
	assert.Empty(t, cfg.AWS.Secret)
	assert.Equal(t, "my-warehouse", cfg.Warehouse.ClusterID)
	assert.Equal(t, "my-warehouse-role", cfg.Warehouse.RoleName)
	assert.Equal(t, 4, cfg.Warehouse.NumNodes)
}

func TestWizardResult_ToConfig_SingleNodeForcesOneNode(t *testing.T) {
	t.Parallel()

	result := &WizardResult{
		ClusterID:      "solo",
		Region:         "us-west-2",
		ClusterType:    ClusterTypeSingleNode,
		NodeType:       "dc2.large",
		NumNodes:       4,
		DBName:         "dwh",
		MasterUsername: "dwhadmin",
		MasterPassword: "Passw0rd",
	}

	cfg := result.ToConfig()
	assert.Equal(t, 1, cfg.Warehouse.NumNodes)
}

func TestValidateClusterID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "my-warehouse", wantErr: false},
		{name: "valid with digits", id: "dwh2", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "uppercase", id: "My-Warehouse", wantErr: true},
		{name: "starts with digit", id: "2dwh", wantErr: true},
		{name: "starts with hyphen", id: "-dwh", wantErr: true},
		{name: "ends with hyphen", id: "dwh-", wantErr: true},
		{name: "double hyphen", id: "dwh--cluster", wantErr: true},
		{name: "underscore", id: "dwh_cluster", wantErr: true},
		{name: "too long", id: stringOfLen(64), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateClusterID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func stringOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

func TestValidateMasterPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Passw0rd", wantErr: false},
		{name: "too short", password: "Pw0", wantErr: true},
		{name: "no uppercase", password: "passw0rd", wantErr: true},
		{name: "no lowercase", password: "PASSW0RD", wantErr: true},
		{name: "no digit", password: "Password", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateMasterPassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
