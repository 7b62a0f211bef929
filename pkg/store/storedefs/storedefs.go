// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the
// store API do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a command history query
// completes with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface satisfied by the command history storage.
type Store interface {
	// NextCmdSeq returns the sequence number that will be assigned to
	// the next command added.
	NextCmdSeq() (int, error)
	// AddCmd adds a new command, returning its sequence number.
	AddCmd(text string) (int, error)
	// Cmd returns the command with the given sequence number.
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns all commands with sequence numbers within
	// [from, upto).
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	// IterateCmds calls the callback with each command with a sequence
	// number within [from, upto), in order.
	IterateCmds(from, upto int, f func(Cmd)) error
	// NextCmd returns the first command after the given sequence number
	// (inclusive) with the given prefix.
	NextCmd(from int, prefix string) (Cmd, error)
	// PrevCmd returns the last command before the given sequence number
	// (exclusive) with the given prefix.
	PrevCmd(upto int, prefix string) (Cmd, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
