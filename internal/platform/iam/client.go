// Package iam manages the IAM role the warehouse cluster assumes for
// read access to source data in S3.
package iam

import (
	"context"
	"encoding/json"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// S3ReadOnlyPolicyARN is the AWS-managed policy granting read-only access
// to S3. It is the only permission the warehouse role carries.
const S3ReadOnlyPolicyARN = "arn:aws:iam::aws:policy/AmazonS3ReadOnlyAccess"

// redshiftServicePrincipal is the only principal allowed to assume the role.
const redshiftServicePrincipal = "redshift.amazonaws.com"

// API defines the IAM operations used by the client.
type API interface {
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	DetachRolePolicy(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error)
	DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
}

// Client manages the warehouse IAM role.
type Client struct {
	api API
}

// NewClient creates a client backed by the real IAM service.
func NewClient(cfg awssdk.Config) *Client {
	return &Client{api: iam.NewFromConfig(cfg)}
}

// NewClientWithAPI creates a client with a custom API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// trustPolicy is the assume-role document permitting only the Redshift
// service to assume the role.
type trustPolicy struct {
	Version   string                 `json:"Version"`
	Statement []trustPolicyStatement `json:"Statement"`
}

type trustPolicyStatement struct {
	Action    string               `json:"Action"`
	Effect    string               `json:"Effect"`
	Principal trustPolicyPrincipal `json:"Principal"`
}

type trustPolicyPrincipal struct {
	Service string `json:"Service"`
}

func trustPolicyDocument() (string, error) {
	doc, err := json.Marshal(trustPolicy{
		Version: "2012-10-17",
		Statement: []trustPolicyStatement{{
			Action:    "sts:AssumeRole",
			Effect:    "Allow",
			Principal: trustPolicyPrincipal{Service: redshiftServicePrincipal},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal trust policy: %w", err)
	}
	return string(doc), nil
}

// EnsureRole creates the role with a Redshift-only trust policy.
// Returns created=false if the role already exists; any other creation
// failure is returned to the caller rather than swallowed, so a run never
// proceeds toward cluster creation with an unresolved role.
func (c *Client) EnsureRole(ctx context.Context, name string) (created bool, err error) {
	doc, err := trustPolicyDocument()
	if err != nil {
		return false, err
	}

	_, err = c.api.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 awssdk.String(name),
		Path:                     awssdk.String("/"),
		Description:              awssdk.String("Allows Redshift clusters to call AWS services on your behalf."),
		AssumeRolePolicyDocument: awssdk.String(doc),
	})
	if err != nil {
		if IsRoleAlreadyExists(err) {
			return false, nil
		}
		return false, fmt.Errorf("iam: create role %q: %w", name, err)
	}

	return true, nil
}

// AttachPolicy attaches a managed policy to the role.
func (c *Client) AttachPolicy(ctx context.Context, roleName, policyARN string) error {
	_, err := c.api.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  awssdk.String(roleName),
		PolicyArn: awssdk.String(policyARN),
	})
	if err != nil {
		return fmt.Errorf("iam: attach policy to role %q: %w", roleName, err)
	}
	return nil
}

// RoleARN reads back the role's ARN. CreateRole does not hand back a
// stable long-lived reference in all SDK versions, so the ARN used for
// cluster creation always comes from GetRole.
func (c *Client) RoleARN(ctx context.Context, name string) (string, error) {
	out, err := c.api.GetRole(ctx, &iam.GetRoleInput{
		RoleName: awssdk.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("iam: get role %q: %w", name, err)
	}
	if out.Role == nil || out.Role.Arn == nil {
		return "", fmt.Errorf("iam: get role %q: response carried no ARN", name)
	}
	return *out.Role.Arn, nil
}

// DetachPolicy detaches a managed policy from the role. The provider
// refuses to delete a role that still has policies attached.
func (c *Client) DetachPolicy(ctx context.Context, roleName, policyARN string) error {
	_, err := c.api.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
		RoleName:  awssdk.String(roleName),
		PolicyArn: awssdk.String(policyARN),
	})
	if err != nil {
		return fmt.Errorf("iam: detach policy from role %q: %w", roleName, err)
	}
	return nil
}

// DeleteRole deletes the role.
func (c *Client) DeleteRole(ctx context.Context, name string) error {
	_, err := c.api.DeleteRole(ctx, &iam.DeleteRoleInput{
		RoleName: awssdk.String(name),
	})
	if err != nil {
		return fmt.Errorf("iam: delete role %q: %w", name, err)
	}
	return nil
}
