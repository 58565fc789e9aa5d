package client

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned by Upload if the local file cannot be confirmed to exist. It is returned
// before any request is sent to the server.
type ErrFileNotFound struct {
	Path string
	Err  error
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("cannot find file to upload %s: %s", e.Path, e.Err.Error())
}

func (e *ErrFileNotFound) Unwrap() error {
	return e.Err
}

// ErrTransport is returned if a request cannot be created or sent, or if no response is received.
// The HTTP status code of a response is never turned into an error.
type ErrTransport struct {
	Method string
	URL    string
	Err    error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("request failed: %s", e.Err.Error())
}

func (e *ErrTransport) Unwrap() error {
	return e.Err
}

var errIsDirectory = errors.New("is a directory")
