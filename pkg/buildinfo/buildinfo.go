// Package buildinfo contains build information.
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"bish.sh/pkg/prog"
)

// Version identifies the version of bish.
const Version = "0.1.0"

// Program is the version subprogram. It is only suitable when -version
// was given.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], "bish", Version, runtime.Version())
	return nil
}
