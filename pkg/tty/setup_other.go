//go:build !unix

package tty

import (
	"fmt"
	"os"
)

// Setup is not supported on this platform.
func Setup(in *os.File) (func() error, error) {
	return nil, fmt.Errorf("%w: raw mode not supported on this platform",
		ErrTerminalUnavailable)
}
