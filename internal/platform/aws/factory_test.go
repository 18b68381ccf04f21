package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T, region string) *Factory {
	t.Helper()
	factory, err := NewFactory(context.Background(), Credentials{Key: "AKIAEXAMPLE", Secret: "secretexample"}, region)
	require.NoError(t, err)
	return factory
}

func TestFactory_Clients_OrderPreserving(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t, "us-west-2")

	handles, err := factory.Clients(ServiceIAM, ServiceRedshift)
	require.NoError(t, err)
	require.Len(t, handles, 2)

	assert.Equal(t, ServiceIAM, handles[0].Service())
	assert.Equal(t, ServiceRedshift, handles[1].Service())
	assert.Equal(t, "us-west-2", handles[0].Region())
	assert.Equal(t, "us-west-2", handles[1].Region())

	_, ok := handles[0].(*IAMHandle)
	assert.True(t, ok, "first handle should be an IAM handle")
	_, ok = handles[1].(*RedshiftHandle)
	assert.True(t, ok, "second handle should be a Redshift handle")
}

func TestFactory_Client_MatchesOneElementClients(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t, "eu-west-1")

	single, err := factory.Client(ServiceIAM)
	require.NoError(t, err)

	many, err := factory.Clients(ServiceIAM)
	require.NoError(t, err)
	require.Len(t, many, 1)

	assert.Equal(t, single.Service(), many[0].Service())
	assert.Equal(t, single.Region(), many[0].Region())
	assert.IsType(t, single, many[0])
}

func TestFactory_Client_S3(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t, "us-east-1")

	handle, err := factory.Client(ServiceS3)
	require.NoError(t, err)

	s3Handle, ok := handle.(*S3Handle)
	require.True(t, ok)
	assert.Equal(t, ServiceS3, s3Handle.Service())
	assert.NotNil(t, s3Handle.Client())
}

func TestFactory_Client_UnknownService(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t, "us-west-2")

	_, err := factory.Client(Service("ec2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown service "ec2"`)
}

func TestFactory_Clients_UnknownServiceFailsWhole(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t, "us-west-2")

	handles, err := factory.Clients(ServiceIAM, Service("ec2"))
	require.Error(t, err)
	assert.Nil(t, handles)
}

func TestFactory_Config_CarriesRegion(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t, "ap-southeast-2")
	assert.Equal(t, "ap-southeast-2", factory.Config().Region)
}
