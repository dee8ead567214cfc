package store

import "net/http"

// NotFoundError is returned when an update targets an account id that does
// not exist. The message is the exact string surfaced to API callers.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "Not exist account with id: " + e.ID
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}
