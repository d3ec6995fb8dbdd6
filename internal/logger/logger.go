// Package logger owns the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects the log destination and verbosity.
type Config struct {
	File   string    // append JSON lines here; empty → Writer
	Writer io.Writer // used when File is empty; nil → os.Stderr
	Debug  bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
)

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup installs a JSON logger per cfg and returns a cleanup that closes
// the log file (if any) and restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	var (
		w io.Writer = cfg.Writer
		f *os.File
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		var err error
		f, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		w = f
	}
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	mu.Unlock()

	l.Debug("logger.initialized", "file", cfg.File, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		global = discard()
		return cerr
	}

	return cleanup, nil
}

// L returns the current logger; before Setup it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
}
