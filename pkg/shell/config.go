package shell

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bish.sh/pkg/edit"
	"bish.sh/pkg/histutil"
)

// Config keeps the options that are fixed at session start. They come
// from built-in defaults, overridden by the rc file, overridden by
// flags.
type Config struct {
	// Prompt is shown before each line. When empty, the prompt shows
	// the working directory.
	Prompt string `yaml:"prompt"`
	// MaxLine is the maximum line length in bytes.
	MaxLine int `yaml:"max-line-bytes"`
	// MaxHistory is the capacity of the in-memory history.
	MaxHistory int `yaml:"max-history"`
}

func defaultConfig() Config {
	return Config{
		MaxLine:    edit.DefaultMaxLine,
		MaxHistory: histutil.DefaultMaxCmds,
	}
}

// loadConfig reads the rc file at the given path into cfg. A missing
// file is not an error. Unknown keys are rejected, so typos do not get
// ignored silently. Non-positive sizes fall back to the defaults.
func loadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("can't read rc file: %v", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("can't parse rc file %s: %v", path, err)
	}
	if cfg.MaxLine <= 0 {
		cfg.MaxLine = edit.DefaultMaxLine
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = histutil.DefaultMaxCmds
	}
	return nil
}
