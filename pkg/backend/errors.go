package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrPassThrough is returned by Dispatch when no route matches. The caller
// (e.g. the http adapter) should forward the request to the real network.
var ErrPassThrough = errors.New("no route matched, pass request through")

// AuthenticationError is returned when login credentials match no user.
type AuthenticationError struct{}

func (*AuthenticationError) Error() string {
	return "Username or password is incorrect"
}

// StatusCode returns the HTTP status code for this error.
func (*AuthenticationError) StatusCode() int {
	return http.StatusUnauthorized
}

// UsernameTakenError is returned when registration reuses an existing
// username.
type UsernameTakenError struct {
	Username string
}

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("Username %q is already taken", e.Username)
}

// StatusCode returns the HTTP status code for this error.
func (e *UsernameTakenError) StatusCode() int {
	return http.StatusConflict
}

// UnauthorizedError is returned by the bearer-token gate when enforcement
// is enabled and the Authorization header does not carry the session token.
type UnauthorizedError struct{}

func (*UnauthorizedError) Error() string {
	return "Unauthorised"
}

// StatusCode returns the HTTP status code for this error.
func (*UnauthorizedError) StatusCode() int {
	return http.StatusUnauthorized
}

// statusCoder is implemented by every domain error that knows its HTTP
// status (account, store, query and backend error types alike).
type statusCoder interface {
	StatusCode() int
}

// errorResponse converts a handler failure into the uniform error envelope.
// Errors without a status default to 400.
func errorResponse(err error) *Response {
	status := http.StatusBadRequest
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	return &Response{Status: status, Body: ErrorBody{Message: err.Error()}}
}
