//go:build unix

package tty

import (
	"errors"
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"

	"bish.sh/pkg/sys/eunix"
)

func TestSetup_RestoreReappliesOriginalAttributes(t *testing.T) {
	_, ttyFile := openPty(t)
	fd := int(ttyFile.Fd())

	original, err := eunix.TermiosForFd(fd)
	if err != nil {
		t.Fatal(err)
	}
	before := *original.Copy()

	restore, err := Setup(ttyFile)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := eunix.TermiosForFd(fd)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, *raw); diff == "" {
		t.Error("terminal attributes unchanged after Setup")
	}

	if err := restore(); err != nil {
		t.Fatal(err)
	}
	after, err := eunix.TermiosForFd(fd)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, *after); diff != "" {
		t.Errorf("restored attributes differ from original (-want +got):\n%s", diff)
	}
}

func TestSetup_RestoreIsIdempotent(t *testing.T) {
	_, ttyFile := openPty(t)

	restore, err := Setup(ttyFile)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := restore(); err != nil {
			t.Errorf("restore call %d: %v", i+1, err)
		}
	}
}

func TestSetup_FailsOnNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	restore, err := Setup(r)
	if !errors.Is(err, ErrTerminalUnavailable) {
		t.Errorf("Setup on pipe -> %v, want ErrTerminalUnavailable", err)
	}
	if restore != nil {
		t.Error("Setup on pipe returned a restore function")
	}
}

func openPty(t *testing.T) (ptmx, ttyFile *os.File) {
	t.Helper()
	ptmx, ttyFile, err := pty.Open()
	if err != nil {
		t.Skip("pty not available:", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		ttyFile.Close()
	})
	return ptmx, ttyFile
}
