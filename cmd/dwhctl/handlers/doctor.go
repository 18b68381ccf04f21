package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/dwhops/dwhctl/internal/config"
	awsplatform "github.com/dwhops/dwhctl/internal/platform/aws"
	"github.com/dwhops/dwhctl/internal/platform/iam"
	"github.com/dwhops/dwhctl/internal/platform/redshift"
	s3platform "github.com/dwhops/dwhctl/internal/platform/s3"
	"github.com/dwhops/dwhctl/internal/provisioning"
)

// bucketChecker is the S3 surface the doctor uses.
type bucketChecker interface {
	BucketReadable(ctx context.Context, bucketName string) (bool, error)
}

// newBucketChecker builds the S3 checker - replaced in tests.
var newBucketChecker = func(ctx context.Context, cfg *config.Config) (bucketChecker, error) {
	factory, err := awsplatform.NewFactory(ctx, awsplatform.Credentials{
		Key:    cfg.AWS.Key,
		Secret: cfg.AWS.Secret,
	}, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}

	handle, err := factory.Client(awsplatform.ServiceS3)
	if err != nil {
		return nil, err
	}
	s3Handle, ok := handle.(*awsplatform.S3Handle)
	if !ok {
		return nil, fmt.Errorf("unexpected handle type %T for service %q", handle, awsplatform.ServiceS3)
	}

	return s3platform.NewClientWithAPI(s3Handle.Client()), nil
}

// doctorCheck is one preflight result line.
type doctorCheck struct {
	name   string
	ok     bool
	detail string
}

// Doctor handles the doctor command.
//
// It validates the configuration, then reports what already exists on the
// provider side: the IAM role, the cluster, and (when configured) whether
// the source data bucket is readable with the supplied credentials.
func Doctor(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	checks := []doctorCheck{
		{name: "configuration", ok: true, detail: configPath},
	}

	roles, warehouse, err := newManagers(ctx, cfg)
	if err != nil {
		return err
	}

	checks = append(checks, checkRole(ctx, roles, cfg.Warehouse.RoleName))
	checks = append(checks, checkCluster(ctx, warehouse, cfg.Warehouse.ClusterID))

	if cfg.Warehouse.DataBucket != "" {
		checker, err := newBucketChecker(ctx, cfg)
		if err != nil {
			return err
		}
		checks = append(checks, checkBucket(ctx, checker, cfg.Warehouse.DataBucket))
	}

	fmt.Print(renderDoctorChecks(cfg.Warehouse.ClusterID, checks))

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("preflight check %q failed: %s", check.name, check.detail)
		}
	}
	return nil
}

func checkRole(ctx context.Context, roles provisioning.RoleManager, roleName string) doctorCheck {
	arn, err := roles.RoleARN(ctx, roleName)
	switch {
	case err == nil:
		return doctorCheck{name: "iam role", ok: true, detail: arn}
	case iam.IsNotFound(err):
		return doctorCheck{name: "iam role", ok: true, detail: fmt.Sprintf("%s does not exist yet; `dwhctl up` creates it", roleName)}
	default:
		return doctorCheck{name: "iam role", ok: false, detail: err.Error()}
	}
}

func checkCluster(ctx context.Context, warehouse provisioning.WarehouseManager, clusterID string) doctorCheck {
	details, err := warehouse.Describe(ctx, clusterID)
	switch {
	case err == nil:
		return doctorCheck{name: "cluster", ok: true, detail: fmt.Sprintf("%s is %s", clusterID, details.Status)}
	case redshift.IsNotFound(err):
		return doctorCheck{name: "cluster", ok: true, detail: fmt.Sprintf("%s does not exist yet; `dwhctl up` creates it", clusterID)}
	default:
		return doctorCheck{name: "cluster", ok: false, detail: err.Error()}
	}
}

func checkBucket(ctx context.Context, checker bucketChecker, bucket string) doctorCheck {
	readable, err := checker.BucketReadable(ctx, bucket)
	switch {
	case err != nil:
		return doctorCheck{name: "data bucket", ok: false, detail: err.Error()}
	case !readable:
		return doctorCheck{name: "data bucket", ok: false, detail: fmt.Sprintf("s3://%s not found", bucket)}
	default:
		return doctorCheck{name: "data bucket", ok: true, detail: "s3://" + bucket}
	}
}

// renderDoctorChecks produces the preflight report.
func renderDoctorChecks(clusterID string, checks []doctorCheck) string {
	out := "\n" + styled(statusTitleStyle, fmt.Sprintf("  dwhctl doctor: %s", clusterID)) + "\n"
	out += styled(statusDimStyle, "  "+strings.Repeat("═", 30)) + "\n\n"

	for _, check := range checks {
		mark := styled(statusGreenStyle, "✓")
		if !check.ok {
			mark = styled(statusRedStyle, "✗")
		}
		out += fmt.Sprintf("  %s %-14s %s\n", mark, check.name, check.detail)
	}

	out += "\n"
	return out
}
