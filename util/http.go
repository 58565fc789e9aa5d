package util

import (
	"net/http"
)

// NewHTTPClient creates a HTTP client that never follows redirects. If the server responds with
// a redirect, the 3xx response itself is returned to the caller. No timeout is set.
func NewHTTPClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
