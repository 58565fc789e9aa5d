package server

import (
	"fmt"
	"net/http"
)

// ErrHTTP is a generic HTTP error for any non-200 HTTP error
type ErrHTTP struct {
	Code   int
	Status string
}

func (e ErrHTTP) Error() string {
	return fmt.Sprintf("http: %s", e.Status)
}

// ErrHTTPBadRequest is returned when the request sent by the client was invalid, e.g. not a multipart form
var ErrHTTPBadRequest = &ErrHTTP{http.StatusBadRequest, http.StatusText(http.StatusBadRequest)}

// ErrHTTPMethodNotAllowed is returned for any method other than GET (files) and POST (uploads)
var ErrHTTPMethodNotAllowed = &ErrHTTP{http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)}

// ErrHTTPNotFound is returned when a file is not found on the server
var ErrHTTPNotFound = &ErrHTTP{http.StatusNotFound, http.StatusText(http.StatusNotFound)}
