package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"bish.sh/pkg/edit"
	"bish.sh/pkg/strutil"
)

// The interface the line editor has to satisfy. It is defined here so
// that this package does not depend on how lines are actually read.
type editor interface {
	ReadLine() (edit.Result, error)
}

// minEditor reads whole lines from a non-terminal input, such as a pipe.
// It needs no raw mode and echoes nothing.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt func() string
}

func newMinEditor(in, out *os.File, prompt func() string) *minEditor {
	if prompt == nil {
		prompt = wdPrompt
	}
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadLine() (edit.Result, error) {
	fmt.Fprint(ed.out, ed.prompt())
	line, err := ed.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return edit.Result{Outcome: edit.Terminated}, nil
		}
		// A last line without a newline is still a line.
		return edit.Result{Outcome: edit.Completed, Line: line}, nil
	} else if err != nil {
		return edit.Result{}, err
	}
	return edit.Result{
		Outcome: edit.Completed, Line: strutil.ChopLineEnding(line)}, nil
}
