package redshift

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/aws/smithy-go"
)

// IsClusterAlreadyExists checks if the error indicates a cluster with the
// same identifier already exists.
func IsClusterAlreadyExists(err error) bool {
	if err == nil {
		return false
	}

	var caef *types.ClusterAlreadyExistsFault
	if errors.As(err, &caef) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ClusterAlreadyExists"
	}

	return false
}

// IsNotFound checks if the error indicates the cluster does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var cnf *types.ClusterNotFoundFault
	if errors.As(err, &cnf) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ClusterNotFound"
	}

	return false
}
