package apierrors

import "fmt"

// APIError is an error that maps directly onto an HTTP response: a status
// code plus a machine-readable error code for the client.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Code)
}

func NewAPIError(status int, code string) *APIError {
	return &APIError{Status: status, Code: code}
}
