package httpclient

import (
	"net/http"
	"time"
)

// New creates an HTTP client for outbound API calls.
// A zero timeout leaves the request unbounded apart from the context.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
