package authsdk

import "fmt"

// APIError represents a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the human-readable message from the response envelope
	Message string

	// FieldErrors holds per-field validation failures, when present
	FieldErrors map[string]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.FieldErrors) > 0 {
		return fmt.Sprintf("authsdk: HTTP %d: %s %v", e.StatusCode, e.Message, e.FieldErrors)
	}
	return fmt.Sprintf("authsdk: HTTP %d: %s", e.StatusCode, e.Message)
}
