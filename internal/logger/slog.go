package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger: a text handler on stderr at warn
// level, or debug level when verbose. stdout stays free for command output
// and the MCP JSON-RPC stream.
func Setup(verbose bool) {
	slog.SetDefault(New(os.Stderr, verbose))
}

// New returns a text logger writing to w.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
