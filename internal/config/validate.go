package config

import (
	"fmt"
)

// ValidClusterTypes contains the cluster type values Redshift accepts.
var ValidClusterTypes = map[string]bool{
	ClusterTypeSingleNode: true,
	ClusterTypeMultiNode:  true,
}

// Validate checks the configuration and returns a named error for the
// first missing or invalid field.
func (c *Config) Validate() error {
	if c.AWS.Key == "" {
		return fmt.Errorf("aws.key is required (or set AWS_ACCESS_KEY_ID)")
	}
	if c.AWS.Secret == "" {
		return fmt.Errorf("aws.secret is required (or set AWS_SECRET_ACCESS_KEY)")
	}
	if c.AWS.Region == "" {
		return fmt.Errorf("aws.region is required")
	}

	if err := c.Warehouse.validate(); err != nil {
		return fmt.Errorf("warehouse validation failed: %w", err)
	}

	return nil
}

func (w *WarehouseConfig) validate() error {
	if w.RoleName == "" {
		return fmt.Errorf("role_name is required")
	}
	if w.ClusterID == "" {
		return fmt.Errorf("cluster_id is required")
	}
	if !ValidClusterTypes[w.ClusterType] {
		return fmt.Errorf("invalid cluster_type %q: must be %q or %q",
			w.ClusterType, ClusterTypeSingleNode, ClusterTypeMultiNode)
	}
	if w.NodeType == "" {
		return fmt.Errorf("node_type is required")
	}
	if w.NumNodes < 1 {
		return fmt.Errorf("num_nodes must be at least 1, got %d", w.NumNodes)
	}
	if w.DBName == "" {
		return fmt.Errorf("db_name is required")
	}
	if w.MasterUsername == "" {
		return fmt.Errorf("master_username is required")
	}
	if w.MasterPassword == "" {
		return fmt.Errorf("master_password is required")
	}
	return nil
}
