package main

import (
	"io"
	"log/slog"
	"os"
)

var (
	logLevel = new(slog.LevelVar)
	theLog   = newLog(os.Stderr)
)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

// logLevelFor lowers the level to debug when leaves are traced, so the
// trace records are not dropped.
func logLevelFor(verbose, traverse bool) slog.Level {
	if verbose || traverse {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
