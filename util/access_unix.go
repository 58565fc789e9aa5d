//go:build unix

package util

import (
	"golang.org/x/sys/unix"
	"os"
)

// CheckReadable confirms that filename exists and can be read by the current user,
// without opening it. The returned error is a *os.PathError.
func CheckReadable(filename string) error {
	if err := unix.Access(filename, unix.R_OK); err != nil {
		return &os.PathError{Op: "access", Path: filename, Err: err}
	}
	return nil
}
