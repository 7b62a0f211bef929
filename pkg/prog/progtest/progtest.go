// Package progtest provides a fixture for testing subprograms end to
// end: it runs prog.Run against a case's command line, captures the
// standard files, and checks the exit status and outputs.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"bish.sh/pkg/prog"
)

// Case is a test case against a program. It is created by ThatBish and
// offers chained setters for expectations.
type Case struct {
	args  []string
	stdin string

	wantExit   int
	wantStdout *matcher
	wantStderr *matcher
}

type matcher struct {
	text     string
	contains bool
}

// ThatBish returns a Case with the given command-line arguments.
func ThatBish(args ...string) *Case {
	return &Case{args: append([]string{"bish"}, args...)}
}

// WithStdin sets the stdin content of the case.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// ExitsWith sets the expected exit status.
func (c *Case) ExitsWith(exit int) *Case {
	c.wantExit = exit
	return c
}

// WritesStdout expects exactly the given stdout.
func (c *Case) WritesStdout(s string) *Case {
	c.wantStdout = &matcher{text: s}
	return c
}

// WritesStdoutContaining expects stdout to contain the given text.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.wantStdout = &matcher{text: s, contains: true}
	return c
}

// WritesStderrContaining expects stderr to contain the given text.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.wantStderr = &matcher{text: s, contains: true}
	return c
}

// DoesNothing asserts only that the program exits with 0.
func (c *Case) DoesNothing() *Case { return c }

// Test runs the cases against the given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := run(t, p, c)
			if exit != c.wantExit {
				t.Errorf("exit status %d, want %d", exit, c.wantExit)
			}
			check(t, "stdout", stdout, c.wantStdout)
			check(t, "stderr", stderr, c.wantStderr)
		})
	}
}

func check(t *testing.T, name, got string, want *matcher) {
	t.Helper()
	if want == nil {
		return
	}
	if want.contains {
		if !strings.Contains(got, want.text) {
			t.Errorf("%s %q does not contain %q", name, got, want.text)
		}
	} else if got != want.text {
		t.Errorf("%s = %q, want %q", name, got, want.text)
	}
}

func run(t *testing.T, p prog.Program, c *Case) (exit int, stdout, stderr string) {
	t.Helper()
	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stdinW.WriteString(c.stdin); err != nil {
		t.Fatal(err)
	}
	stdinW.Close()
	defer stdinR.Close()

	outFile, getOut := capture(t)
	errFile, getErr := capture(t)
	exit = prog.Run([3]*os.File{stdinR, outFile, errFile}, c.args, p)
	return exit, getOut(), getErr()
}

func capture(t *testing.T) (*os.File, func() string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	return w, func() string {
		w.Close()
		b, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		r.Close()
		return string(b)
	}
}
