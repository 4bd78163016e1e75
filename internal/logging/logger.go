// Package logging defines the structured-logging interface used across the
// client, with adapters for log/slog and zerolog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

var (
	_ Logger = slogAdapter{}
	_ Logger = nopLogger{}
	_ Logger = (*ZerologLogger)(nil)
)

// Logger is a context-aware, structured logger.
//
// The variadic args are key-value pairs:
//
//	log.Info(ctx, "session restored", "account_type", p.AccountType)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// New builds a Logger writing to w. format is one of "text", "json"
// (both slog) or "zerolog"; level is debug, info, warn or error.
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return FromSlog(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))), nil
	case "json":
		return FromSlog(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))), nil
	case "zerolog":
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		return NewZerologLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger()), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }

// FromSlog wraps l; a nil l means slog.Default().
func FromSlog(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogAdapter{l: l}
}

type slogAdapter struct {
	l *slog.Logger
}

// emit skips disabled levels before the pairs are turned into attributes.
func (a slogAdapter) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	if !a.l.Enabled(ctx, level) {
		return
	}
	a.l.Log(ctx, level, msg, args...)
}

func (a slogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelDebug, msg, args)
}

func (a slogAdapter) Info(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelInfo, msg, args)
}

func (a slogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelWarn, msg, args)
}

func (a slogAdapter) Error(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelError, msg, args)
}

func (a slogAdapter) With(args ...any) Logger {
	return slogAdapter{l: a.l.With(args...)}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
