// Bish is a small interactive command prompt with a raw-mode line
// editor and persistent command history.
package main

import (
	"os"

	"bish.sh/pkg/buildinfo"
	"bish.sh/pkg/prog"
	"bish.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, shell.Program{})))
}
