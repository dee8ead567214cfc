package backend

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/getbankd/bankd/pkg/httputil"
	"github.com/getbankd/bankd/pkg/logging"
)

// MaxBodySize caps request bodies accepted by the HTTP adapter.
const MaxBodySize = 1 << 20 // 1MB

// HTTPHandler mounts a Router as an http.Handler. Requests no route claims
// are passed through to next; with no next handler configured, unmatched
// requests get a 502.
type HTTPHandler struct {
	router *Router
	next   http.Handler
	log    *slog.Logger
}

// NewHTTPHandler creates the adapter. next may be nil.
func NewHTTPHandler(router *Router, next http.Handler) *HTTPHandler {
	log := router.log
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPHandler{router: router, next: next, log: log}
}

// ServeHTTP translates the request into the synthetic envelope, dispatches
// it, and writes the result back as JSON.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		httputil.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	req := &Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: make(map[string]string, len(r.Header)),
		Query:   make(map[string]string),
		Body:    body,
	}
	for k, vs := range r.Header {
		if len(vs) > 0 {
			req.Headers[k] = vs[0]
		}
	}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			req.Query[k] = vs[0]
		}
	}

	resp, err := h.router.Dispatch(r.Context(), req)
	switch {
	case errors.Is(err, ErrPassThrough):
		if h.next == nil {
			httputil.WriteError(w, http.StatusBadGateway, "no upstream configured for unmatched route")
			return
		}
		// Restore the consumed body before handing the request on.
		r.Body = io.NopCloser(bytes.NewReader(body))
		h.next.ServeHTTP(w, r)
	case err != nil:
		// Context cancelled during the delivery delay; the client is gone
		// and there is nothing to write.
		h.log.Debug("delivery abandoned", "path", r.URL.Path, "error", err)
	default:
		httputil.WriteJSON(w, resp.Status, resp.Body)
	}
}

var _ http.Handler = (*HTTPHandler)(nil)
