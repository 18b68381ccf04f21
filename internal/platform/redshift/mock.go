package redshift

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/redshift"
)

// MockAPI is a mock implementation of API.
type MockAPI struct {
	CreateClusterFunc    func(ctx context.Context, params *redshift.CreateClusterInput, optFns ...func(*redshift.Options)) (*redshift.CreateClusterOutput, error)
	DescribeClustersFunc func(ctx context.Context, params *redshift.DescribeClustersInput, optFns ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error)
	DeleteClusterFunc    func(ctx context.Context, params *redshift.DeleteClusterInput, optFns ...func(*redshift.Options)) (*redshift.DeleteClusterOutput, error)
}

// Ensure interface compliance
var _ API = (*MockAPI)(nil)

// CreateCluster mocks cluster creation.
func (m *MockAPI) CreateCluster(ctx context.Context, params *redshift.CreateClusterInput, optFns ...func(*redshift.Options)) (*redshift.CreateClusterOutput, error) {
	if m.CreateClusterFunc != nil {
		return m.CreateClusterFunc(ctx, params, optFns...)
	}
	return &redshift.CreateClusterOutput{}, nil
}

// DescribeClusters mocks cluster description.
func (m *MockAPI) DescribeClusters(ctx context.Context, params *redshift.DescribeClustersInput, optFns ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error) {
	if m.DescribeClustersFunc != nil {
		return m.DescribeClustersFunc(ctx, params, optFns...)
	}
	return &redshift.DescribeClustersOutput{}, nil
}

// DeleteCluster mocks cluster deletion.
func (m *MockAPI) DeleteCluster(ctx context.Context, params *redshift.DeleteClusterInput, optFns ...func(*redshift.Options)) (*redshift.DeleteClusterOutput, error) {
	if m.DeleteClusterFunc != nil {
		return m.DeleteClusterFunc(ctx, params, optFns...)
	}
	return &redshift.DeleteClusterOutput{}, nil
}
