package config

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	ClusterID      string
	Region         string
	ClusterType    string
	NodeType       string
	NumNodes       int
	DBName         string
	MasterUsername string
	MasterPassword string
}

// RunWizard runs the configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Region:      DefaultRegion,
		ClusterType: ClusterTypeMultiNode,
		NodeType:    "dc2.large",
		NumNodes:    4,
		DBName:      "dwh",
	}

	form := huh.NewForm(
		// Cluster identity
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster identifier").
				Description("Unique per AWS account and region (lowercase, hyphens)").
				Placeholder("my-warehouse").
				Value(&result.ClusterID).
				Validate(validateClusterID),
		),

		// Region selection
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("AWS region the cluster is created in").
				Options(
					huh.NewOption("US West (Oregon) us-west-2", "us-west-2"),
					huh.NewOption("US East (N. Virginia) us-east-1", "us-east-1"),
					huh.NewOption("Europe (Ireland) eu-west-1", "eu-west-1"),
					huh.NewOption("Europe (Frankfurt) eu-central-1", "eu-central-1"),
					huh.NewOption("Asia Pacific (Sydney) ap-southeast-2", "ap-southeast-2"),
				).
				Value(&result.Region),
		),

		// Hardware
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Cluster type").
				Description("single-node: one combined node | multi-node: leader + compute nodes").
				Options(
					huh.NewOption("Multi-node", ClusterTypeMultiNode),
					huh.NewOption("Single-node", ClusterTypeSingleNode),
				).
				Value(&result.ClusterType),

			huh.NewSelect[string]().
				Title("Node type").
				Description("Compute and storage class per node").
				Options(
					huh.NewOption("dc2.large - 2 vCPU, 15GB RAM, 160GB SSD", "dc2.large"),
					huh.NewOption("dc2.8xlarge - 32 vCPU, 244GB RAM, 2.56TB SSD", "dc2.8xlarge"),
					huh.NewOption("ra3.xlplus - 4 vCPU, 32GB RAM, managed storage", "ra3.xlplus"),
					huh.NewOption("ra3.4xlarge - 12 vCPU, 96GB RAM, managed storage", "ra3.4xlarge"),
				).
				Value(&result.NodeType),

			huh.NewSelect[int]().
				Title("Number of nodes").
				Description("Ignored for single-node clusters").
				Options(
					huh.NewOption("2 nodes", 2),
					huh.NewOption("4 nodes", 4),
					huh.NewOption("6 nodes", 6),
					huh.NewOption("8 nodes", 8),
				).
				Value(&result.NumNodes),
		),

		// Database credentials
		huh.NewGroup(
			huh.NewInput().
				Title("Database name").
				Placeholder("dwh").
				Value(&result.DBName).
				Validate(requireValue("database name")),

			huh.NewInput().
				Title("Master username").
				Placeholder("dwhadmin").
				Value(&result.MasterUsername).
				Validate(requireValue("master username")),

			huh.NewInput().
				Title("Master password").
				Description("8-64 chars with upper, lower, and digit").
				EchoMode(huh.EchoModePassword).
				Value(&result.MasterPassword).
				Validate(validateMasterPassword),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config.
// Credentials are intentionally left empty; the loader picks them up from
// AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY so they never land in the file.
func (r *WizardResult) ToConfig() *Config {
	numNodes := r.NumNodes
	if r.ClusterType == ClusterTypeSingleNode {
		numNodes = 1
	}

	return &Config{
		AWS: AWSConfig{
			Region: r.Region,
		},
		Warehouse: WarehouseConfig{
			RoleName:       r.ClusterID + "-role",
			ClusterType:    r.ClusterType,
			NodeType:       r.NodeType,
			NumNodes:       numNodes,
			DBName:         r.DBName,
			ClusterID:      r.ClusterID,
			MasterUsername: r.MasterUsername,
			MasterPassword: r.MasterPassword,
		},
	}
}

// validateClusterID enforces the Redshift cluster identifier rules.
func validateClusterID(s string) error {
	if s == "" {
		return fmt.Errorf("cluster identifier is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("cluster identifier must be 63 characters or less")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("cluster identifier can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] < 'a' || s[0] > 'z' {
		return fmt.Errorf("cluster identifier must start with a letter")
	}
	if s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return fmt.Errorf("cluster identifier cannot end with a hyphen or contain two consecutive hyphens")
	}
	return nil
}

// validateMasterPassword enforces the Redshift master password rules.
func validateMasterPassword(s string) error {
	if len(s) < 8 || len(s) > 64 {
		return fmt.Errorf("password must be 8-64 characters")
	}
	var upper, lower, digit bool
	for _, c := range s {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return fmt.Errorf("password needs at least one uppercase letter, one lowercase letter, and one digit")
	}
	return nil
}

func requireValue(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
