package backend

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/getbankd/bankd/pkg/logging"
	"github.com/getbankd/bankd/pkg/query"
	"github.com/getbankd/bankd/pkg/store"
)

// DefaultLatency is the simulated network delay applied to every delivery.
const DefaultLatency = 500 * time.Millisecond

// accountIDPath matches any /accounts/{id} shape, e.g. /api/accounts/42.
var accountIDPath = regexp.MustCompile(`/accounts/.+$`)

// handlerFunc handles a matched request, returning the success payload or a
// domain error.
type handlerFunc func(req *Request) (any, error)

// route binds a (method, path-shape) predicate to a handler. Routes are
// evaluated in order, first match wins; the generic /accounts/{id} shapes
// sit after the more specific ones so they cannot shadow them.
type route struct {
	name   string
	method string
	match  func(path string) bool
	handle handlerFunc
}

// Options configures a Router.
type Options struct {
	// Latency is the fixed delay before any response is delivered.
	// Zero means DefaultLatency; use a negative value to disable.
	Latency time.Duration

	// EnforceAuth turns on the bearer-token gate for account routes.
	EnforceAuth bool

	// Logger defaults to a no-op logger.
	Logger *slog.Logger
}

// Router dispatches synthetic requests against the ordered route table.
type Router struct {
	mu          sync.Mutex
	store       *store.RecordStore
	engine      *query.Engine
	log         *slog.Logger
	latency     time.Duration
	token       string
	enforceAuth bool
	routes      []route
}

// NewRouter creates a Router over the given record store.
func NewRouter(st *store.RecordStore, opts Options) (*Router, error) {
	token, err := mintSessionToken()
	if err != nil {
		return nil, err
	}

	latency := opts.Latency
	if latency == 0 {
		latency = DefaultLatency
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	r := &Router{
		store:       st,
		engine:      query.NewEngine(),
		log:         log,
		latency:     latency,
		token:       token,
		enforceAuth: opts.EnforceAuth,
	}
	r.routes = []route{
		{"login", http.MethodPost, suffix("/users/login"), r.authenticate},
		{"register", http.MethodPost, suffix("/users/register"), r.register},
		{"list accounts", http.MethodGet, suffix("/accounts"), r.listAccounts},
		{"delete account", http.MethodDelete, accountIDPath.MatchString, r.deleteAccount},
		{"create account", http.MethodPost, suffix("accounts"), r.createAccount},
		{"update account", http.MethodPut, accountIDPath.MatchString, r.updateAccount},
		{"fetch accounts", http.MethodGet, accountIDPath.MatchString, r.fetchAccounts},
	}
	return r, nil
}

// Token returns the fixed session token minted for this router.
func (r *Router) Token() string {
	return r.token
}

// Dispatch matches req against the route table, runs the handler, and
// delivers the envelope after the fixed latency. A miss returns
// ErrPassThrough. Handling is serialized; only the delivery delay runs
// concurrently. If ctx is cancelled before the delay elapses the response
// is abandoned and ctx's error returned — any mutation already applied
// stays applied.
func (r *Router) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	matched := r.matchRoute(req)
	if matched == nil {
		return nil, ErrPassThrough
	}

	r.mu.Lock()
	body, err := matched.handle(req)
	r.mu.Unlock()

	var resp *Response
	if err != nil {
		r.log.Warn("request failed", "route", matched.name, "path", req.Path, "error", err)
		resp = errorResponse(err)
	} else {
		r.log.Debug("request handled", "route", matched.name, "path", req.Path)
		resp = &Response{Status: http.StatusOK, Body: body}
	}

	if err := r.delay(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *Router) matchRoute(req *Request) *route {
	for i := range r.routes {
		rt := &r.routes[i]
		if req.Method == rt.method && rt.match(req.Path) {
			return rt
		}
	}
	return nil
}

// delay blocks for the fixed latency on a timer, or until ctx is done.
func (r *Router) delay(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func suffix(s string) func(string) bool {
	return func(path string) bool {
		return strings.HasSuffix(path, s)
	}
}

// idFromPath extracts the trailing path segment.
func idFromPath(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
