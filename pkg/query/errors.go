package query

import (
	"fmt"
	"net/http"
)

// InvalidArgumentError is returned for malformed pagination or filter
// input: negative start/limit, or an Expr that fails to compile or does not
// evaluate to a boolean.
type InvalidArgumentError struct {
	Param   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
	}
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *InvalidArgumentError) StatusCode() int {
	return http.StatusBadRequest
}
