package library

import (
	"crypto/tls"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher abstracts HTTP access to remote font libraries for testability.
type Fetcher interface {
	Get(url string) (*http.Response, error)
}

// RealFetcher wraps http.Client for production use.
type RealFetcher struct {
	client *http.Client
}

// NewRealFetcher returns a fetcher with a timeout-bounded TLS client so an
// unresponsive host cannot stall a run indefinitely.
func NewRealFetcher() Fetcher {
	return &RealFetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
	}
}

func (f *RealFetcher) Get(url string) (*http.Response, error) {
	return f.client.Get(url)
}

// MockFetcher simulates HTTP responses for tests.
type MockFetcher struct {
	responses map[string]*http.Response
	errors    map[string]error
}

// NewMockFetcher returns an empty mock. Unregistered URLs yield 404.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		responses: make(map[string]*http.Response),
		errors:    make(map[string]error),
	}
}

// AddResponse registers a canned response for a URL.
func (m *MockFetcher) AddResponse(url string, statusCode int, body string) {
	m.responses[url] = &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// AddError registers a transport error for a URL.
func (m *MockFetcher) AddError(url string, err error) {
	m.errors[url] = err
}

func (m *MockFetcher) Get(url string) (*http.Response, error) {
	if err, ok := m.errors[url]; ok {
		return nil, err
	}
	if resp, ok := m.responses[url]; ok {
		return resp, nil
	}
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader("Not Found")),
		Header:     make(http.Header),
	}, nil
}
