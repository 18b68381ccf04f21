// Package redshift manages the analytics cluster lifecycle: creation,
// a point-in-time description, and deletion.
package redshift

import (
	"context"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
)

// API defines the Redshift operations used by the client.
type API interface {
	CreateCluster(ctx context.Context, params *redshift.CreateClusterInput, optFns ...func(*redshift.Options)) (*redshift.CreateClusterOutput, error)
	DescribeClusters(ctx context.Context, params *redshift.DescribeClustersInput, optFns ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error)
	DeleteCluster(ctx context.Context, params *redshift.DeleteClusterInput, optFns ...func(*redshift.Options)) (*redshift.DeleteClusterOutput, error)
}

// Client manages the warehouse cluster.
type Client struct {
	api API
}

// NewClient creates a client backed by the real Redshift service.
func NewClient(cfg awssdk.Config) *Client {
	return &Client{api: redshift.NewFromConfig(cfg)}
}

// NewClientWithAPI creates a client with a custom API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// ClusterSpec carries the parameters for cluster creation.
type ClusterSpec struct {
	ClusterID      string
	ClusterType    string // "single-node" or "multi-node"
	NodeType       string
	NumNodes       int32 // ignored for single-node clusters
	DBName         string
	MasterUsername string
	MasterPassword string
	RoleARN        string // grants the cluster S3 read access
}

// ClusterDetails is a point-in-time snapshot of a cluster's descriptive
// record.
type ClusterDetails struct {
	Identifier       string
	Status           string
	ClusterType      string
	NodeType         string
	NumNodes         int32
	DBName           string
	MasterUsername   string
	Endpoint         Endpoint
	AvailabilityZone string
	VpcID            string
	CreatedAt        *time.Time
	RoleARNs         []string
}

// Endpoint is the cluster's JDBC endpoint. Empty until the cluster
// becomes available.
type Endpoint struct {
	Address string
	Port    int32
}

// Create requests cluster creation. Returns created=false if a cluster
// with the same identifier already exists.
//
// The node count is only sent for multi-node clusters; the provider
// rejects a node count on single-node requests.
func (c *Client) Create(ctx context.Context, spec ClusterSpec) (created bool, err error) {
	input := &redshift.CreateClusterInput{
		ClusterIdentifier:  awssdk.String(spec.ClusterID),
		ClusterType:        awssdk.String(spec.ClusterType),
		NodeType:           awssdk.String(spec.NodeType),
		DBName:             awssdk.String(spec.DBName),
		MasterUsername:     awssdk.String(spec.MasterUsername),
		MasterUserPassword: awssdk.String(spec.MasterPassword),
		IamRoles:           []string{spec.RoleARN},
	}
	if spec.ClusterType == "multi-node" {
		input.NumberOfNodes = awssdk.Int32(spec.NumNodes)
	}

	_, err = c.api.CreateCluster(ctx, input)
	if err != nil {
		if IsClusterAlreadyExists(err) {
			return false, nil
		}
		return false, fmt.Errorf("redshift: create cluster %q: %w", spec.ClusterID, err)
	}

	return true, nil
}

// Describe returns a point-in-time snapshot of the cluster. No waiting is
// performed; shortly after creation the status reads "creating" and the
// endpoint is empty.
func (c *Client) Describe(ctx context.Context, clusterID string) (*ClusterDetails, error) {
	out, err := c.api.DescribeClusters(ctx, &redshift.DescribeClustersInput{
		ClusterIdentifier: awssdk.String(clusterID),
	})
	if err != nil {
		return nil, fmt.Errorf("redshift: describe cluster %q: %w", clusterID, err)
	}
	if len(out.Clusters) == 0 {
		return nil, fmt.Errorf("redshift: describe cluster %q: empty response", clusterID)
	}

	cluster := out.Clusters[0]
	details := &ClusterDetails{
		Identifier:       awssdk.ToString(cluster.ClusterIdentifier),
		Status:           awssdk.ToString(cluster.ClusterStatus),
		NodeType:         awssdk.ToString(cluster.NodeType),
		NumNodes:         awssdk.ToInt32(cluster.NumberOfNodes),
		DBName:           awssdk.ToString(cluster.DBName),
		MasterUsername:   awssdk.ToString(cluster.MasterUsername),
		AvailabilityZone: awssdk.ToString(cluster.AvailabilityZone),
		VpcID:            awssdk.ToString(cluster.VpcId),
		CreatedAt:        cluster.ClusterCreateTime,
	}
	if awssdk.ToInt32(cluster.NumberOfNodes) > 1 {
		details.ClusterType = "multi-node"
	} else {
		details.ClusterType = "single-node"
	}
	if cluster.Endpoint != nil {
		details.Endpoint = Endpoint{
			Address: awssdk.ToString(cluster.Endpoint.Address),
			Port:    awssdk.ToInt32(cluster.Endpoint.Port),
		}
	}
	for _, role := range cluster.IamRoles {
		if role.IamRoleArn != nil {
			details.RoleARNs = append(details.RoleARNs, *role.IamRoleArn)
		}
	}

	return details, nil
}

// Delete requests cluster deletion. The skip-final-snapshot choice is
// always carried explicitly; callers decide whether the data is discarded
// or archived, never the provider default.
func (c *Client) Delete(ctx context.Context, clusterID string, skipFinalSnapshot bool) error {
	_, err := c.api.DeleteCluster(ctx, &redshift.DeleteClusterInput{
		ClusterIdentifier:        awssdk.String(clusterID),
		SkipFinalClusterSnapshot: awssdk.Bool(skipFinalSnapshot),
	})
	if err != nil {
		return fmt.Errorf("redshift: delete cluster %q: %w", clusterID, err)
	}
	return nil
}
