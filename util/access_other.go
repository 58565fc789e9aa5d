//go:build !unix

package util

import (
	"os"
)

// CheckReadable confirms that filename exists and can be read by the current user.
// The returned error is a *os.PathError.
func CheckReadable(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	return f.Close()
}
