package testutility

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
)

type MockHTTPServer struct {
	*httptest.Server
	mu       sync.Mutex
	response map[string][]byte // path -> response
	status   map[string]int    // path -> status code, if not 200
	requests map[string]int    // path -> number of requests served
}

// NewMockHTTPServer starts and returns a new simple HTTP Server for mocking basic requests.
// The Server will automatically be shut down with Close() in the test Cleanup function.
//
// Use the SetResponse / SetResponseFromFile to set the responses for specific URL paths.
func NewMockHTTPServer(t *testing.T) *MockHTTPServer {
	t.Helper()
	mock := &MockHTTPServer{
		response: make(map[string][]byte),
		status:   make(map[string]int),
		requests: make(map[string]int),
	}
	mock.Server = httptest.NewServer(mock)
	t.Cleanup(func() { mock.Server.Close() })

	return mock
}

// SetResponse sets the Server's response for the URL path to be response bytes.
func (m *MockHTTPServer) SetResponse(t *testing.T, path string, response []byte) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	path = strings.TrimPrefix(path, "/")
	m.response[path] = response
}

// SetResponseFromFile sets the Server's response for the URL path to be the contents of the file at filename.
func (m *MockHTTPServer) SetResponseFromFile(t *testing.T, path string, filename string) {
	t.Helper()
	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read response file: %v", err)
	}
	m.SetResponse(t, path, b)
}

// SetStatus makes the Server respond to the URL path with the given status code
// alongside whatever response has been set for it.
func (m *MockHTTPServer) SetStatus(t *testing.T, path string, code int) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[strings.TrimPrefix(path, "/")] = code
}

// Requests returns how many requests have been made for the URL path.
func (m *MockHTTPServer) Requests(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.requests[strings.TrimPrefix(path, "/")]
}

// ServeHTTP is the http.Handler for the underlying httptest.Server.
func (m *MockHTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.EscapedPath(), "/")

	m.mu.Lock()
	m.requests[path]++
	resp, ok := m.response[path]
	code, hasCode := m.status[path]
	m.mu.Unlock()

	switch {
	case hasCode:
		w.WriteHeader(code)
	case !ok:
		w.WriteHeader(http.StatusNotFound)
		resp = []byte("not found")
	}

	if _, err := w.Write(resp); err != nil {
		log.Fatalf("Write: %v", err)
	}
}
