package handlers

import (
	"context"
	"fmt"

	"github.com/dwhops/dwhctl/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("dwhctl - Redshift data warehouse provisioning")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("This wizard creates a warehouse configuration with sensible defaults.")
	fmt.Println("Credentials are read from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY")
	fmt.Println("and are never written to the file.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Warehouse Summary")
	fmt.Println("-----------------")
	fmt.Printf("  Cluster:   %s\n", cfg.Warehouse.ClusterID)
	fmt.Printf("  Region:    %s\n", cfg.AWS.Region)
	fmt.Printf("  Nodes:     %d x %s (%s)\n", cfg.Warehouse.NumNodes, cfg.Warehouse.NodeType, cfg.Warehouse.ClusterType)
	fmt.Printf("  Database:  %s\n", cfg.Warehouse.DBName)
	fmt.Printf("  IAM role:  %s\n", cfg.Warehouse.RoleName)
	fmt.Println()

	fmt.Println("Next steps")
	fmt.Println("----------")
	fmt.Printf("  1. export AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY\n")
	fmt.Printf("  2. dwhctl doctor -c %s\n", outputPath)
	fmt.Printf("  3. dwhctl up -c %s\n", outputPath)
	fmt.Println()
}
