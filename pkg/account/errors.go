package account

import (
	"fmt"
	"net/http"
)

// ConflictError is returned when a candidate account reuses an account
// number that belongs to a different record.
type ConflictError struct {
	AccountNumber string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("account number %q already exists", e.AccountNumber)
}

// StatusCode returns the HTTP status code for this error.
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// ValidationError is returned when a candidate account violates one of the
// structural business rules (age, balance, email shape).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}
