package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// transientCodes are provider error codes worth re-running the command for.
var transientCodes = map[string]bool{
	"Throttling":           true,
	"ThrottlingException":  true,
	"RequestLimitExceeded": true,
	"ServiceUnavailable":   true,
	"InternalFailure":      true,
	"InternalError":        true,
	"RequestTimeout":       true,
}

// IsTransient reports whether the error is a throttle or provider-side
// failure that a plain re-run of the same command may clear.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return transientCodes[apiErr.ErrorCode()]
	}

	return false
}
