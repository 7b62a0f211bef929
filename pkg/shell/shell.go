// Package shell is the entry point for the interactive interface of
// bish.
package shell

import (
	"fmt"
	"os"

	"bish.sh/pkg/buildinfo"
	"bish.sh/pkg/histutil"
	"bish.sh/pkg/logutil"
	"bish.sh/pkg/prog"
	"bish.sh/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct {
	// Handler receives each accepted line. The shell does not interpret
	// the line's content. If nil, a placeholder that echoes the line is
	// used.
	Handler func(line string) error
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not accepted")
	}

	cfg := defaultConfig()
	if !f.NoRc {
		rc := f.RC
		if rc == "" {
			rc = rcPath()
		}
		if rc != "" {
			if err := loadConfig(rc, &cfg); err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
	}

	hist := histutil.NewMemStore(cfg.MaxHistory)
	dbpath := f.DB
	if dbpath == "" {
		dbpath = dbPath()
	}
	if dbpath != "" {
		db, err := store.NewStore(dbpath)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			fmt.Fprintln(fds[2], "History will not be persisted.")
		} else {
			defer db.Close()
			if s, err := histutil.NewDBStore(db); err == nil {
				hist = s
			} else {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
	}

	handler := p.Handler
	if handler == nil {
		// Command dispatch is an external collaborator; the built-in
		// placeholder just echoes the line.
		handler = func(line string) error {
			_, err := fmt.Fprintln(fds[1], line)
			return err
		}
	}

	prompt := wdPrompt
	if cfg.Prompt != "" {
		fixed := cfg.Prompt
		prompt = func() string { return fixed }
	}

	fmt.Fprintln(fds[1], "bish", buildinfo.Version)
	Interact(fds, &InteractConfig{
		Prompt:  prompt,
		MaxLine: cfg.MaxLine,
		Store:   hist,
		Handler: handler,
	})
	return nil
}

// wdPrompt is the default prompt, showing the working directory.
func wdPrompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	return wd + "> "
}
