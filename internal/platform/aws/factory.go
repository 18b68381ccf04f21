// Package aws builds authenticated service clients from a single set of
// credentials and a region.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Service is a logical service name the factory knows how to build.
type Service string

// Services the factory can produce handles for.
const (
	ServiceIAM      Service = "iam"
	ServiceRedshift Service = "redshift"
	ServiceS3       Service = "s3"
)

// Credentials is an access key pair.
type Credentials struct {
	Key    string
	Secret string
}

// Handle is an authenticated client for one service, bound to the
// factory's region. Callers type-assert to the concrete handle to reach
// the underlying SDK client.
type Handle interface {
	Service() Service
	Region() string
}

// Factory produces service handles sharing one resolved AWS config.
type Factory struct {
	cfg    awssdk.Config
	region string
}

// NewFactory resolves credentials and region into a shared AWS config.
// Credentials are not validated here; a bad key pair surfaces on the
// first API call.
func NewFactory(ctx context.Context, creds Credentials, region string) (*Factory, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.Key, creds.Secret, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Factory{cfg: cfg, region: region}, nil
}

// Config returns the shared resolved AWS config.
func (f *Factory) Config() awssdk.Config {
	return f.cfg
}

// Client builds a handle for a single service.
func (f *Factory) Client(service Service) (Handle, error) {
	switch service {
	case ServiceIAM:
		return &IAMHandle{client: iam.NewFromConfig(f.cfg), region: f.region}, nil
	case ServiceRedshift:
		return &RedshiftHandle{client: redshift.NewFromConfig(f.cfg), region: f.region}, nil
	case ServiceS3:
		return &S3Handle{client: s3.NewFromConfig(f.cfg), region: f.region}, nil
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}

// Clients builds one handle per requested service, order-preserving.
func (f *Factory) Clients(services ...Service) ([]Handle, error) {
	handles := make([]Handle, 0, len(services))
	for _, service := range services {
		h, err := f.Client(service)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// IAMHandle is an authenticated IAM client handle.
type IAMHandle struct {
	client *iam.Client
	region string
}

// Service returns ServiceIAM.
func (h *IAMHandle) Service() Service { return ServiceIAM }

// Region returns the region the handle is bound to.
func (h *IAMHandle) Region() string { return h.region }

// Client returns the underlying SDK client.
func (h *IAMHandle) Client() *iam.Client { return h.client }

// RedshiftHandle is an authenticated Redshift client handle.
type RedshiftHandle struct {
	client *redshift.Client
	region string
}

// Service returns ServiceRedshift.
func (h *RedshiftHandle) Service() Service { return ServiceRedshift }

// Region returns the region the handle is bound to.
func (h *RedshiftHandle) Region() string { return h.region }

// Client returns the underlying SDK client.
func (h *RedshiftHandle) Client() *redshift.Client { return h.client }

// S3Handle is an authenticated S3 client handle.
type S3Handle struct {
	client *s3.Client
	region string
}

// Service returns ServiceS3.
func (h *S3Handle) Service() Service { return ServiceS3 }

// Region returns the region the handle is bound to.
func (h *S3Handle) Region() string { return h.region }

// Client returns the underlying SDK client.
func (h *S3Handle) Client() *s3.Client { return h.client }
