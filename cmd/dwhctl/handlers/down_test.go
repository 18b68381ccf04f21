package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwhops/dwhctl/internal/provisioning"
)

func TestDown(t *testing.T) {
	origLoad := loadConfigFile
	origManagers := newManagers
	origDestroy := newDestroyProvisioner
	defer func() {
		loadConfigFile = origLoad
		newManagers = origManagers
		newDestroyProvisioner = origDestroy
	}()

	var runs int
	loadConfigFile = stubLoadConfig(testConfig())
	newManagers = stubManagers(&fakeRoles{}, &fakeWarehouse{})
	newDestroyProvisioner = func() provisioning.Phase { return &stubPhase{name: "destroy", ran: &runs} }

	err := Down(context.Background(), "dwh.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestDown_TeardownFailure(t *testing.T) {
	origLoad := loadConfigFile
	origManagers := newManagers
	origDestroy := newDestroyProvisioner
	defer func() {
		loadConfigFile = origLoad
		newManagers = origManagers
		newDestroyProvisioner = origDestroy
	}()

	loadConfigFile = stubLoadConfig(testConfig())
	newManagers = stubManagers(&fakeRoles{}, &fakeWarehouse{})
	newDestroyProvisioner = func() provisioning.Phase {
		return &stubPhase{name: "destroy", err: errors.New("cluster stuck")}
	}

	err := Down(context.Background(), "dwh.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destroy failed")
	assert.Contains(t, err.Error(), "cluster stuck")
}

func TestDown_ConfigLoadError(t *testing.T) {
	origLoad := loadConfigFile
	defer func() { loadConfigFile = origLoad }()

	loadConfigFile = stubLoadConfig(nil)

	err := Down(context.Background(), "missing.yaml")
	require.Error(t, err)
}
