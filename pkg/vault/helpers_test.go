package vault

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// recordedRequest captures one request seen by the test server.
type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// recorder wraps a handler and records every request it serves.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) record(req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	// Restore the body so the wrapped handler can still read it.
	req.Body = io.NopCloser(bytes.NewReader(body))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, recordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   string(body),
	})
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *recorder) last() recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[len(r.requests)-1]
}

// newTestClient starts a test server around handler and returns a Client
// pointed at it. Retries are configured tight so failure tests stay fast.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec.record(req)
		handler(w, req)
	}))
	t.Cleanup(srv.Close)

	cfg := &Config{
		BaseURL:       srv.URL,
		AuthToken:     "test-token",
		MaxRetries:    2,
		RetryInterval: time.Millisecond,
	}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("failed to build test client: %v", err)
	}
	return client, rec
}

// respondJSON writes body with a JSON content type.
func respondJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
