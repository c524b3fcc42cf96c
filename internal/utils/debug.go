package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const logPrefix = "dlhist-"

var (
	logger  = log.New(io.Discard)
	logFile *os.File
	mu      sync.RWMutex
)

// ConfigureLogging opens a fresh log file in dir and makes it the target of
// Logger and Debug. The TUI owns stdout, so logs only ever go to a file.
func ConfigureLogging(dir string, level log.Level) (*log.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating logs dir: %w", err)
	}
	name := logPrefix + time.Now().Format("20060102-150405") + ".log"
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	// plain text in files
	l.SetColorProfile(termenv.Ascii)

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logger, logFile = l, f
	return l, nil
}

// Logger returns the shared logger. It discards everything until
// ConfigureLogging succeeds.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// CloseLog flushes and detaches the current log file
func CloseLog() error {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(io.Discard)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Debug writes a formatted debug message to the shared logger
func Debug(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// CleanupLogs removes all but the newest keep log files from dir
func CleanupLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), logPrefix) && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, e.Name())
		}
	}
	if len(logs) <= keep {
		return nil
	}

	// timestamped names sort oldest first
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-max(keep, 0)] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
