// Package logutil provides opt-in debug logging.
//
// Loggers created by GetLogger are silent until SetOutput or
// SetOutputFile directs them somewhere, which normally only happens when
// the user passes -log.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex   sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. The logger writes to
// whatever destination has been set with SetOutput or SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, including those created
// later, to the given writer.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile is like SetOutput, but opens the named file for
// appending and keeps it open. An empty name reverts to discarding.
func SetOutputFile(fname string) error {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	if fname == "" {
		out = io.Discard
	} else {
		f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %v", fname, err)
		}
		outFile = f
		out = f
	}
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
