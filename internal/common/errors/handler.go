// internal/common/errors/handler.go
package errors

import (
	goerrors "errors"
	"net/http"
)

// HTTPStatus maps an error code to the HTTP status the API surfaces.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeEmptyText, ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeNoProviderAvailable, ErrCodeEngineUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the user-facing message carried in the {"detail": ...} body.
// Engine internals stay in the logs, not in the response.
func Detail(err *StandardError) string {
	switch err.Code {
	case ErrCodeEmptyText:
		return "Empty text"
	case ErrCodeNoProviderAvailable, ErrCodeEngineUnavailable:
		return "No tagging provider available"
	case ErrCodeInvalidRequest:
		if err.Details != "" {
			return err.Details
		}
		return "Invalid request body"
	default:
		return "Internal server error"
	}
}

// AsStandard normalizes any error to a StandardError.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if goerrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeEngineFailure,
		Message:   err.Error(),
		Retryable: false,
	}
}
