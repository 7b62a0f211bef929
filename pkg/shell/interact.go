package shell

import (
	"errors"
	"fmt"
	"os"

	"bish.sh/pkg/edit"
	"bish.sh/pkg/histutil"
	"bish.sh/pkg/store/storedefs"
	"bish.sh/pkg/sys"
	"bish.sh/pkg/tty"
)

// InteractConfig keeps the configuration for the interactive session
// loop.
type InteractConfig struct {
	// Prompt is called before each read cycle.
	Prompt func() string
	// MaxLine is the maximum line length in bytes.
	MaxLine int
	// Store records accepted lines. May be nil.
	Store histutil.Store
	// Handler receives each accepted line.
	Handler func(line string) error
}

// Interact runs an interactive session: it repeatedly reads one line and
// hands it to the handler, until the user terminates the session or the
// terminal becomes unusable.
//
// When stdin is a terminal, lines are read with the raw-mode line
// editor; otherwise a minimal editor that reads whole lines is used, so
// that bish can consume piped input.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	var ed editor
	if sys.IsATTY(fds[0].Fd()) {
		ed = edit.NewEditor(edit.Spec{
			In: fds[0], Out: fds[1],
			Prompt: cfg.Prompt, MaxLine: cfg.MaxLine,
		})
	} else {
		ed = newMinEditor(fds[0], fds[1], cfg.Prompt)
	}
	interact(ed, fds, cfg)
}

func interact(ed editor, fds [3]*os.File, cfg *InteractConfig) {
	for {
		result, err := ed.ReadLine()
		if err != nil {
			if errors.Is(err, tty.ErrTerminalUnavailable) {
				fmt.Fprintln(fds[2], err)
			} else {
				fmt.Fprintln(fds[2], "error reading input:", err)
			}
			return
		}

		switch result.Outcome {
		case edit.Completed:
			line := result.Line
			if line != "" && cfg.Store != nil {
				_, err := cfg.Store.AddCmd(storedefs.Cmd{Text: line, Seq: -1})
				if err != nil {
					logger.Println("failed to record history:", err)
				}
			}
			if err := cfg.Handler(line); err != nil {
				fmt.Fprintln(fds[2], err)
			}
		case edit.Cancelled:
			if result.Line == "" {
				fmt.Fprintln(fds[1], "Use Ctrl-D to exit.")
			}
		case edit.Terminated:
			fmt.Fprintln(fds[1], "bye!")
			return
		}
	}
}
