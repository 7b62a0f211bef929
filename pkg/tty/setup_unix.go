//go:build unix

package tty

import (
	"fmt"
	"os"

	"bish.sh/pkg/sys/eunix"
)

// Setup puts the terminal referred to by in into raw mode, and returns a
// function that restores the original attributes.
//
// On Unix all file descriptors open on the same terminal are equivalent,
// so only the input file is used for changing the mode.
func Setup(in *os.File) (func() error, error) {
	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: can't get terminal attributes: %v",
			ErrTerminalUnavailable, err)
	}

	savedTermios := term.Copy()

	term.SetRaw()
	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: can't set terminal attributes: %v",
			ErrTerminalUnavailable, err)
	}

	return func() error {
		return savedTermios.ApplyToFd(fd)
	}, nil
}
