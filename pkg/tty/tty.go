// Package tty manages the mode of the terminal device used by an
// interactive session.
//
// Setup captures the terminal attributes in effect when the session
// starts and switches the terminal to raw mode; the returned restore
// function re-applies the captured attributes. The captured attributes
// are never mutated, so restore may be called any number of times, on
// any exit path, and always brings the terminal back to its original
// state.
package tty

import "errors"

// ErrTerminalUnavailable is returned by Setup when the terminal
// attributes cannot be read or applied, typically because the input file
// is not actually a terminal. Errors returned by Setup wrap this value.
var ErrTerminalUnavailable = errors.New("terminal unavailable")
