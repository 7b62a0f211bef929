package buildinfo_test

import (
	"testing"

	"bish.sh/pkg/buildinfo"
	"bish.sh/pkg/prog"
	"bish.sh/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	progtest.Test(t, buildinfo.Program{},
		progtest.ThatBish("-version").
			WritesStdoutContaining(buildinfo.Version),
	)
}

func TestProgram_NotSuitableWithoutVersionFlag(t *testing.T) {
	progtest.Test(t, prog.Composite(buildinfo.Program{}),
		progtest.ThatBish().
			ExitsWith(2).
			WritesStderrContaining("no suitable subprogram"),
	)
}
