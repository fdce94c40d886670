// Package ids generates correlation identifiers for AgentFlow runs.
package ids

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Identifier prefixes. The prefix names the correlation scope so a raw
// id in a log line is self-describing.
const (
	TraceIDPrefix     = "tr_"
	ExecutionIDPrefix = "ex_"
	GoalIDPrefix      = "gl_"
)

// NewTraceID returns a trace id correlating one end-to-end run.
func NewTraceID() (string, error) {
	return newID(TraceIDPrefix)
}

// NewExecutionID returns an execution id for one attempt within a
// trace.
func NewExecutionID() (string, error) {
	return newID(ExecutionIDPrefix)
}

// NewGoalID returns a goal id.
func NewGoalID() (string, error) {
	return newID(GoalIDPrefix)
}

// newID generates a prefixed lowercase ULID, 29 characters total.
func newID(prefix string) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return prefix + strings.ToLower(id.String()), nil
}

// Valid reports whether s is a well-formed id with the given prefix.
func Valid(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	_, err := ulid.Parse(strings.ToUpper(strings.TrimPrefix(s, prefix)))
	return err == nil
}
