// Package logger provides structured logging for AgentFlow.
package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/veyra/agentflow-go/internal/telemetry/tracectx"
)

// Logger is a named emitter. Loggers are cheap values; components hold
// one per subsystem (Named("runtime"), Named("graph"), ...).
type Logger struct {
	name string
}

// Named returns a logger emitting under the given name.
func Named(name string) *Logger {
	return &Logger{name: name}
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Debug logs at DEBUG level. kv are alternating key/value pairs; an
// error value under the "error" key becomes the record's exception
// payload.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, LevelDebug, msg, kv)
}

// Info logs at INFO level.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, LevelInfo, msg, kv)
}

// Warning logs at WARNING level.
func (l *Logger) Warning(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, LevelWarning, msg, kv)
}

// Error logs at ERROR level.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, LevelError, msg, kv)
}

// Critical logs at CRITICAL level.
func (l *Logger) Critical(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, LevelCritical, msg, kv)
}

func (l *Logger) log(ctx context.Context, level Level, msg string, kv []any) {
	s := current.Load()
	if level < s.min {
		return
	}

	fields, failure := splitKV(kv)
	e := Event{
		Time:    time.Now().UTC(),
		Level:   level,
		Logger:  l.name,
		Message: msg,
		Fields:  fields,
		Failure: failure,
	}

	emit(s, e, tracectx.Snapshot(ctx))
}

// splitKV turns alternating key/value pairs into event fields. An
// error value under the "error" key is lifted out as the failure
// payload. A dangling value gets the !BADKEY key rather than being
// dropped.
func splitKV(kv []any) (Fields, string) {
	if len(kv) == 0 {
		return nil, ""
	}

	fields := make(Fields, len(kv)/2)
	failure := ""

	for i := 0; i < len(kv); i += 2 {
		if i+1 >= len(kv) {
			fields["!BADKEY"] = kv[i]
			break
		}

		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}

		if key == "error" {
			if err, ok := kv[i+1].(error); ok {
				failure = err.Error()
				continue
			}
		}
		fields[key] = kv[i+1]
	}

	if len(fields) == 0 {
		fields = nil
	}
	return fields, failure
}

// root is the logger used by the package-level convenience functions.
var root = Named("agentflow")

// Debug logs at DEBUG level through the root logger.
func Debug(ctx context.Context, msg string, kv ...any) { root.Debug(ctx, msg, kv...) }

// Info logs at INFO level through the root logger.
func Info(ctx context.Context, msg string, kv ...any) { root.Info(ctx, msg, kv...) }

// Warning logs at WARNING level through the root logger.
func Warning(ctx context.Context, msg string, kv ...any) { root.Warning(ctx, msg, kv...) }

// Error logs at ERROR level through the root logger.
func Error(ctx context.Context, msg string, kv ...any) { root.Error(ctx, msg, kv...) }

// Critical logs at CRITICAL level through the root logger.
func Critical(ctx context.Context, msg string, kv ...any) { root.Critical(ctx, msg, kv...) }
