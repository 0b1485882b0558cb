package report

import (
	"errors"

	"devops-board/internal/devops"
)

// Failure is the only error shape crossing the boundary. Status carries the
// upstream HTTP status when the error came from the tracking service, with
// 0 meaning no HTTP response was received; it is absent for errors raised
// before any request.
type Failure struct {
	Error   bool   `json:"error"`
	Status  *int   `json:"status,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// FromError translates an internal error into the outbound failure shape.
func FromError(err error) Failure {
	var apiErr *devops.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		return Failure{
			Error:   true,
			Status:  &status,
			Message: err.Error(),
			Details: apiErr.Details,
		}
	}

	return Failure{
		Error:   true,
		Message: err.Error(),
	}
}
