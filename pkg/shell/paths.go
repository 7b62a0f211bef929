package shell

import (
	"os"
	"path/filepath"
)

// rcPath returns the default path of rc.yaml, or "" if no config
// directory can be determined.
func rcPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bish", "rc.yaml")
}

// dbPath returns the default path of the history database, creating its
// directory if needed. It returns "" if no suitable directory can be
// determined, in which case history is kept in memory only.
func dbPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "bish")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return ""
	}
	return filepath.Join(dir, "db.bolt")
}
