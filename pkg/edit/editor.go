// Package edit implements an interactive line editor for a command
// prompt.
//
// The editor reads raw bytes from a terminal one at a time, maintains a
// bounded line buffer with a movable dot, and keeps the visible terminal
// line in sync with the buffer after every edit. A read cycle ends when
// the user accepts the line, cancels it, or signals end of input.
//
// The editor is byte-oriented; it makes no attempt to interpret
// multi-byte characters or escape sequences. Arrow keys arrive as plain
// escape-introduced bytes and are inserted literally.
package edit

import (
	"io"
	"os"

	"bish.sh/pkg/logutil"
	"bish.sh/pkg/tty"
)

var logger = logutil.GetLogger("[edit] ")

// DefaultMaxLine is the default maximum line length, in bytes.
const DefaultMaxLine = 1024

// Spec specifies the configuration for an Editor.
type Spec struct {
	// In is the terminal input. It must be the file connected to the
	// terminal device, since its file descriptor is also used for
	// switching the terminal mode.
	In *os.File
	// Out is the terminal output. Each visible change is issued as a
	// single Write before the next input byte is read.
	Out io.Writer
	// Prompt is called at the start of each read cycle. If nil, a fixed
	// "> " prompt is used.
	Prompt func() string
	// MaxLine is the maximum line length in bytes. Bytes typed into a
	// full buffer are discarded silently. If <= 0, DefaultMaxLine is
	// used.
	MaxLine int
}

// Editor reads lines from a terminal in raw mode. It is not safe for
// concurrent use; at most one ReadLine may be in progress at a time.
type Editor struct {
	in     *os.File
	out    io.Writer
	prompt func() string
	buf    *Buffer

	// Swapped out in tests to avoid needing a real terminal.
	setup func(*os.File) (func() error, error)
}

// NewEditor creates a new Editor from the given spec.
func NewEditor(spec Spec) *Editor {
	if spec.Prompt == nil {
		spec.Prompt = func() string { return "> " }
	}
	if spec.MaxLine <= 0 {
		spec.MaxLine = DefaultMaxLine
	}
	return &Editor{
		in:     spec.In,
		out:    spec.Out,
		prompt: spec.Prompt,
		buf:    NewBuffer(spec.MaxLine),
		setup:  tty.Setup,
	}
}

// ReadLine runs one read cycle: it switches the terminal to raw mode,
// shows the prompt, and processes input bytes until the cycle ends. The
// original terminal mode is restored before ReadLine returns, on every
// path.
//
// A non-nil error means the terminal became unusable: raw mode could not
// be acquired (the error wraps tty.ErrTerminalUnavailable), or reading
// input failed. End of input is not an error; it yields a Terminated
// result.
func (ed *Editor) ReadLine() (Result, error) {
	restore, err := ed.setup(ed.in)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Println("failed to restore terminal:", err)
		}
	}()

	ed.buf.Clear()
	ed.write([]byte(ed.prompt()))

	var b [1]byte
	for {
		nr, err := ed.in.Read(b[:])
		if err == io.EOF {
			return Result{Outcome: Terminated}, nil
		} else if err != nil {
			return Result{}, err
		} else if nr == 0 {
			continue
		}
		if result, done := ed.handleByte(b[0]); done {
			return result, nil
		}
	}
}

// handleByte processes one input byte while reading. It reports whether
// the read cycle is done, and with what result.
func (ed *Editor) handleByte(b byte) (Result, bool) {
	switch b {
	case keyCtrlC:
		ed.write([]byte("^C\r\n"))
		return Result{Outcome: Cancelled, Line: ed.buf.String()}, true
	case keyCtrlD:
		return Result{Outcome: Terminated}, true
	case keyEnter:
		ed.write([]byte("\r\n"))
		return Result{Outcome: Completed, Line: ed.buf.String()}, true
	default:
		if ed.buf.InsertAtDot(b) {
			ed.syncAfterInsert(b)
		}
		return Result{}, false
	}
}

func (ed *Editor) write(p []byte) {
	// A failing terminal write is not actionable here; a truly dead
	// terminal also fails the next read, which ends the session.
	_, err := ed.out.Write(p)
	if err != nil {
		logger.Println("failed to write to terminal:", err)
	}
}
