package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the service logger. Verbose mode lowers the level to debug;
// otherwise info and above are emitted.
func New(verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter builds a logger writing to w. Split out so tests can capture
// output.
func NewWithWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
