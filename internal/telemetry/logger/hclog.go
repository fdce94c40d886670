// Package logger provides structured logging for AgentFlow.
package logger

import (
	"context"
	"io"
	"log"

	"github.com/hashicorp/go-hclog"
)

// hclogAdapter adapts the AgentFlow pipeline to hashicorp/go-hclog,
// so hashicorp-style dependencies emit correlated records through the
// configured sink. The adapter carries the task context it was created
// under; records inherit that task's trace identifiers.
type hclogAdapter struct {
	ctx     context.Context
	l       *Logger
	implied []any
}

// NewHCLog returns an hclog.Logger backed by the AgentFlow pipeline.
// Level control stays with Configure/SetLevel; the adapter's SetLevel
// is a no-op.
func NewHCLog(ctx context.Context, name string) hclog.Logger {
	return &hclogAdapter{ctx: ctx, l: Named(name)}
}

func (a *hclogAdapter) Log(level hclog.Level, msg string, args ...any) {
	switch level {
	case hclog.Trace, hclog.Debug:
		a.Debug(msg, args...)
	case hclog.Info, hclog.NoLevel:
		a.Info(msg, args...)
	case hclog.Warn:
		a.Warn(msg, args...)
	case hclog.Error:
		a.Error(msg, args...)
	}
}

func (a *hclogAdapter) Trace(msg string, args ...any) { a.Debug(msg, args...) }

func (a *hclogAdapter) Debug(msg string, args ...any) {
	a.l.Debug(a.ctx, msg, append(a.implied, args...)...)
}

func (a *hclogAdapter) Info(msg string, args ...any) {
	a.l.Info(a.ctx, msg, append(a.implied, args...)...)
}

func (a *hclogAdapter) Warn(msg string, args ...any) {
	a.l.Warning(a.ctx, msg, append(a.implied, args...)...)
}

func (a *hclogAdapter) Error(msg string, args ...any) {
	a.l.Error(a.ctx, msg, append(a.implied, args...)...)
}

func (a *hclogAdapter) IsTrace() bool { return false }
func (a *hclogAdapter) IsDebug() bool { return current.Load().min <= LevelDebug }
func (a *hclogAdapter) IsInfo() bool  { return current.Load().min <= LevelInfo }
func (a *hclogAdapter) IsWarn() bool  { return current.Load().min <= LevelWarning }
func (a *hclogAdapter) IsError() bool { return current.Load().min <= LevelError }

func (a *hclogAdapter) ImpliedArgs() []any { return a.implied }

func (a *hclogAdapter) With(args ...any) hclog.Logger {
	implied := make([]any, 0, len(a.implied)+len(args))
	implied = append(implied, a.implied...)
	implied = append(implied, args...)
	return &hclogAdapter{ctx: a.ctx, l: a.l, implied: implied}
}

func (a *hclogAdapter) Name() string { return a.l.Name() }

func (a *hclogAdapter) Named(name string) hclog.Logger {
	full := name
	if a.l.Name() != "" {
		full = a.l.Name() + "." + name
	}
	return &hclogAdapter{ctx: a.ctx, l: Named(full), implied: a.implied}
}

func (a *hclogAdapter) ResetNamed(name string) hclog.Logger {
	return &hclogAdapter{ctx: a.ctx, l: Named(name), implied: a.implied}
}

func (a *hclogAdapter) SetLevel(level hclog.Level) {}

func (a *hclogAdapter) GetLevel() hclog.Level {
	switch current.Load().min {
	case LevelDebug:
		return hclog.Debug
	case LevelInfo:
		return hclog.Info
	case LevelWarning:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

func (a *hclogAdapter) StandardLogger(opts *hclog.StandardLoggerOptions) *log.Logger {
	return log.New(a.StandardWriter(opts), "", 0)
}

func (a *hclogAdapter) StandardWriter(opts *hclog.StandardLoggerOptions) io.Writer {
	return &stdWriter{a: a}
}

// stdWriter forwards stdlib log output as INFO records.
type stdWriter struct {
	a *hclogAdapter
}

func (w *stdWriter) Write(p []byte) (int, error) {
	msg := string(p)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	w.a.Info(msg)
	return len(p), nil
}
