package backend

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts Options, next http.Handler) (*httptest.Server, *Router) {
	t.Helper()
	r, _ := newTestRouter(t, opts)
	srv := httptest.NewServer(NewHTTPHandler(r, next))
	t.Cleanup(srv.Close)
	return srv, r
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestHTTPLoginRoundTrip(t *testing.T) {
	srv, r := newTestServer(t, Options{}, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/users/login",
		map[string]string{"username": "demo", "password": "demo123"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var login struct {
		ID        int    `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		Token     string `json:"token"`
	}
	decodeBody(t, resp, &login)
	assert.Equal(t, 1, login.ID)
	assert.Equal(t, "demo", login.Username)
	assert.Equal(t, r.Token(), login.Token)
}

func TestHTTPErrorEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, Options{}, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/users/login",
		map[string]string{"username": "demo", "password": "wrong"})

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, map[string]string{"message": "Username or password is incorrect"}, body)
}

func TestHTTPListAccountsWireFormat(t *testing.T) {
	srv, _ := newTestServer(t, Options{}, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/accounts?last_name=Smith", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var accounts []map[string]any
	decodeBody(t, resp, &accounts)
	require.Len(t, accounts, 1)

	// Wire field names, not Go names.
	assert.Equal(t, "a1", accounts[0]["_id"])
	assert.Equal(t, "1001", accounts[0]["account_number"])
	assert.Contains(t, accounts[0], "firstname")
	assert.Contains(t, accounts[0], "lastname")
}

func TestHTTPAuthorizationGate(t *testing.T) {
	srv, r := newTestServer(t, Options{EnforceAuth: true}, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/accounts", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/accounts", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+r.Token())
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	assert.Equal(t, http.StatusOK, authed.StatusCode)
}

func TestHTTPPassThroughWithoutUpstream(t *testing.T) {
	srv, _ := newTestServer(t, Options{}, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/other", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "no upstream")
}

func TestHTTPPassThroughToUpstream(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The adapter must hand the body through intact.
		data, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusTeapot)
		w.Write(data)
	})
	srv, _ := newTestServer(t, Options{}, next)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/other", map[string]string{"k": "v"})
	require.Equal(t, http.StatusTeapot, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(data))
}

func TestHTTPBodyTooLarge(t *testing.T) {
	r, _ := newTestRouter(t, Options{})
	handler := NewHTTPHandler(r, nil)

	huge := strings.NewReader(`{"pad":"` + strings.Repeat("x", MaxBodySize+1) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", huge)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
