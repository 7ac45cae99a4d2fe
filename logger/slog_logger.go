package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger implements the [Logger] interface on top of a [slog.Logger],
// so calculation records carry their key-value pairs as slog attributes.
// Trace maps to slog.Level(LevelTrace), four steps below slog.LevelDebug;
// use ReplaceLevelName to have handlers print it as TRACE.
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger] passing ctx to every handler
// call. It panics if logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// NewTextLogger returns a [SlogLogger] writing logfmt records at or above
// level to w, with the trace level named TRACE.
func NewTextLogger(w io.Writer, level Level) *SlogLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       slog.Level(level),
		ReplaceAttr: ReplaceLevelName,
	})
	return NewSlogLogger(context.Background(), slog.New(handler))
}

func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log(slog.Level(LevelTrace), msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *SlogLogger) log(level slog.Level, msg string, args ...any) {
	if !l.logger.Enabled(l.ctx, level) {
		return
	}
	// skip runtime.Callers, log and the exported level method
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = l.logger.Handler().Handle(l.ctx, record)
}

// ReplaceLevelName is a [slog.HandlerOptions] ReplaceAttr function that
// renders LevelTrace as "TRACE" instead of "DEBUG-4".
func ReplaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == slog.Level(LevelTrace) {
		a.Value = slog.StringValue(LevelTrace.String())
	}
	return a
}
