package main

import (
	"io"
	"log/slog"
	"time"
)

// newLogger builds the structured stderr logger. Unknown levels fall back to warn,
// which keeps normal runs quiet.
func newLogger(w io.Writer, level string, debug bool) *slog.Logger {
	lvl := slog.LevelWarn
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}
