package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raven-themes/raven/internal/remote"
)

// Request is what a ThemeServer saw of one call.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   []byte
}

// ThemeServer is an httptest server standing in for the theme server. It
// records every request before passing it to the handler.
type ThemeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewThemeServer starts a server that answers with handler and stops it
// when the test finishes.
func NewThemeServer(t *testing.T, handler http.HandlerFunc) *ThemeServer {
	t.Helper()

	s := &ThemeServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		query := make(map[string]string)
		for key, values := range r.URL.Query() {
			query[key] = values[0]
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  query,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the recorded requests in arrival order.
func (s *ThemeServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Hits returns how many requests were received.
func (s *ThemeServer) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Paths returns "METHOD path" of every recorded request.
func (s *ThemeServer) Paths() []string {
	var out []string
	for _, r := range s.Requests() {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}

// Client returns a remote client pointed at the server.
func (s *ThemeServer) Client(t *testing.T) *remote.Client {
	t.Helper()

	c, err := remote.New(remote.Config{BaseURL: s.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

// Routes answers each "METHOD path" key with its handler and 404 otherwise.
func Routes(routes map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.Method+" "+r.URL.EscapedPath()]; ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
	}
}

// Status answers every request with code.
func Status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

// Body answers with code and body.
func Body(code int, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write(body)
	}
}
