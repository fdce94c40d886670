// Package logger provides structured logging for AgentFlow.
package logger

import (
	"encoding/json"
	"fmt"
	"time"
)

// Formatter renders one event, merged with the task's context snapshot,
// into a single output line (without trailing newline).
type Formatter interface {
	Render(e Event, snapshot map[string]any) string
}

// JSONFormatter produces one machine-parseable JSON object per event.
//
// timestamp, level, logger and message are always sourced from the
// event and can never be overridden by context or event fields.
// Absent optional fields are omitted, never errors. Key order follows
// encoding/json map marshaling (sorted), which is stable; it is not
// part of the output contract.
type JSONFormatter struct{}

func (JSONFormatter) Render(e Event, snapshot map[string]any) string {
	entry := e.merged(snapshot)
	entry["timestamp"] = e.Time.UTC().Format(time.RFC3339Nano)
	entry["level"] = e.Level.lower()
	entry["logger"] = e.Logger
	entry["message"] = e.Message
	if e.Failure != "" {
		entry["exception"] = e.Failure
	}

	b, err := json.Marshal(entry)
	if err != nil {
		// A caller handed us an unmarshalable value. Rendering must
		// not fail, so stringify the offending values and retry.
		for k, v := range entry {
			if _, verr := json.Marshal(v); verr != nil {
				entry[k] = fmt.Sprint(v)
			}
		}
		b, _ = json.Marshal(entry)
	}
	return string(b)
}
