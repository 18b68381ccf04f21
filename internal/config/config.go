package config

// Cluster type values accepted by the Redshift CreateCluster API.
const (
	ClusterTypeSingleNode = "single-node"
	ClusterTypeMultiNode  = "multi-node"
)

// DefaultRegion is used when the config file does not name a region.
const DefaultRegion = "us-west-2"

// Config holds the full application configuration.
type Config struct {
	AWS       AWSConfig       `mapstructure:"aws" yaml:"aws"`
	Warehouse WarehouseConfig `mapstructure:"warehouse" yaml:"warehouse"`
}

// AWSConfig holds credentials and the target region.
type AWSConfig struct {
	// Key and Secret are the access key pair. Either may be left empty in
	// the file and supplied via AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY.
	Key    string `mapstructure:"key" yaml:"key,omitempty"`
	Secret string `mapstructure:"secret" yaml:"secret,omitempty"`

	// Region the cluster and role are created in. Default: us-west-2.
	Region string `mapstructure:"region" yaml:"region"`
}

// WarehouseConfig holds the IAM role and Redshift cluster parameters.
type WarehouseConfig struct {
	// RoleName is the IAM role the cluster assumes for S3 read access.
	RoleName string `mapstructure:"role_name" yaml:"role_name"`

	// ClusterType is "single-node" or "multi-node".
	ClusterType string `mapstructure:"cluster_type" yaml:"cluster_type"`

	// NodeType is the Redshift node class, e.g. dc2.large or ra3.xlplus.
	NodeType string `mapstructure:"node_type" yaml:"node_type"`

	// NumNodes is the node count. Only meaningful for multi-node clusters;
	// single-node clusters always run one node.
	NumNodes int `mapstructure:"num_nodes" yaml:"num_nodes"`

	// DBName is the name of the initial database.
	DBName string `mapstructure:"db_name" yaml:"db_name"`

	// ClusterID is the cluster identifier, unique per account and region.
	ClusterID string `mapstructure:"cluster_id" yaml:"cluster_id"`

	// MasterUsername and MasterPassword are the admin database credentials.
	MasterUsername string `mapstructure:"master_username" yaml:"master_username"`
	MasterPassword string `mapstructure:"master_password" yaml:"master_password"`

	// DataBucket optionally names the S3 bucket holding the source data.
	// When set, `dwhctl doctor` verifies the bucket is reachable.
	DataBucket string `mapstructure:"data_bucket" yaml:"data_bucket,omitempty"`
}
