package iam

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/smithy-go"
)

// IsRoleAlreadyExists checks if the error indicates the role already exists.
func IsRoleAlreadyExists(err error) bool {
	if err == nil {
		return false
	}

	var eae *types.EntityAlreadyExistsException
	if errors.As(err, &eae) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "EntityAlreadyExists"
	}

	return false
}

// IsNotFound checks if the error indicates the role or attachment is gone.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var nse *types.NoSuchEntityException
	if errors.As(err, &nse) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchEntity"
	}

	return false
}
