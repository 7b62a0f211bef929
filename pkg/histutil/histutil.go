// Package histutil provides the history collaborator of the line
// editor.
//
// The editing core does not yet traverse history; this package defines
// the interface it will call into (recording via AddCmd, navigation via
// Cursor) along with a bounded in-memory implementation and one backed
// by the persistent store.
package histutil

import (
	"errors"

	"bish.sh/pkg/store/storedefs"
)

// ErrEndOfHistory is returned by Cursor.Get if the cursor has been moved
// past either end of the history.
var ErrEndOfHistory = errors.New("end of history")

// DefaultMaxCmds is the default capacity of the in-memory history.
const DefaultMaxCmds = 30

// Store is an abstract interface for history stores.
type Store interface {
	// AllCmds returns all commands kept in the store.
	AllCmds() ([]storedefs.Cmd, error)
	// AddCmd adds a new command to the store.
	AddCmd(cmd storedefs.Cmd) (int, error)
	// Cursor returns a cursor over commands with the given prefix. The
	// cursor is initially past the last command.
	Cursor(prefix string) Cursor
}

// Cursor is a cursor over the command history.
type Cursor interface {
	// Prev moves the cursor to the previous matching command.
	Prev()
	// Next moves the cursor to the next matching command.
	Next()
	// Get returns the command the cursor is on, or ErrEndOfHistory if
	// the cursor has moved past either end.
	Get() (storedefs.Cmd, error)
}
