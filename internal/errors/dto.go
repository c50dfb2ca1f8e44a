package errors

import "github.com/cockroachdb/errors"

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display       string `json:"message"`
	InternalError string `json:"internal_error,omitempty"`
}

// Hint returns the first operator-facing hint attached to an error, falling
// back to the error message itself
func Hint(err error) string {
	if err == nil {
		return ""
	}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return err.Error()
}

// NewErrorResponse converts an error into the standard response shape,
// surfacing hints to the caller and keeping internals out of the payload.
func NewErrorResponse(err error) ErrorResponse {
	detail := ErrorDetail{Display: "An unexpected error occurred"}
	if err == nil {
		return ErrorResponse{Success: false, Error: detail}
	}

	detail.Display = Hint(err)
	return ErrorResponse{Success: false, Error: detail}
}
