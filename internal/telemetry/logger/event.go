// Package logger provides structured logging for AgentFlow.
package logger

import "time"

// Fields is the open field mapping attached to a single event.
//
// Recognized keys are event, latency_ms, tokens_used, node_id and
// model; unrecognized keys pass through to the output unchanged.
type Fields map[string]any

// Event is one log record, captured at the call site. The message is
// already rendered; formatters never interpolate it further.
type Event struct {
	// Time is the emission instant, UTC.
	Time time.Time

	// Level is the record severity.
	Level Level

	// Logger is the name of the emitting logger.
	Logger string

	// Message is the rendered log message.
	Message string

	// Fields holds the optional per-event structured fields.
	Fields Fields

	// Failure is the rendered error/stack text, if any.
	Failure string
}

// merged builds the record's field set: the context snapshot as
// background, event fields as foreground. An event field always wins
// over a same-named context field.
func (e Event) merged(snapshot map[string]any) map[string]any {
	m := make(map[string]any, len(snapshot)+len(e.Fields))
	for k, v := range snapshot {
		m[k] = v
	}
	for k, v := range e.Fields {
		m[k] = v
	}
	return m
}
