package devops

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failed call to the tracking service. StatusCode 0 means the
// request never produced an HTTP response, such as a network failure or a
// client-side timeout.
type APIError struct {
	StatusCode int
	Reason     string
	Details    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("devops request failed: %s", e.Reason)
	}
	return fmt.Sprintf("devops request failed: %d %s", e.StatusCode, e.Reason)
}

// IsNotFound checks if the error is a not-found response from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}
