package backend

// Request is a synthetic HTTP-like request. Headers and Query hold
// single-valued entries; Body is the raw payload, JSON-encoded for the
// routes that take one.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
}

// Response is the uniform success envelope: a status code and a body
// payload. Failures carry an ErrorBody.
type Response struct {
	Status int
	Body   any
}

// ErrorBody is the uniform failure payload.
type ErrorBody struct {
	Message string `json:"message"`
}

// LoginResponse is returned by the login route. Token is the fixed session
// token the (optional) authorization gate checks against.
type LoginResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token"`
}
