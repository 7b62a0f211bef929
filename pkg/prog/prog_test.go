package prog_test

import (
	"fmt"
	"os"
	"testing"

	. "bish.sh/pkg/prog"
	"bish.sh/pkg/prog/progtest"
)

var (
	Test     = progtest.Test
	ThatBish = progtest.ThatBish
)

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fmt.Fprint(fds[1], p.writeOut)
	return p.returnErr
}

func TestCommonFlagHandling(t *testing.T) {
	Test(t, testProgram{},
		ThatBish("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatBish("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatBish("-help").
			WritesStdoutContaining("Usage: bish [flags]"),
	)
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatBish().
			ExitsWith(2).
			WritesStderrContaining("internal error: no suitable subprogram"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatBish().WritesStdout("program 2"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatBish().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t, testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatBish().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatBish().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatBish().ExitsWith(0),
	)
}
