// Package logger provides structured logging for AgentFlow.
//
// Every record automatically carries the correlation identifiers of the
// task that produced it (trace_id, execution_id, agent_id, node_id),
// read from the tracectx store at emission time. Callers never thread
// identifiers through log calls.
//
// This package contains:
//
//   - event.go: the immutable per-call log event
//   - level.go: the ordered severity scale
//   - json.go / human.go: the two render paths
//   - configure.go: sink/formatter/level binding
//   - logger.go: named logger facade
//   - hclog.go: bridge for dependencies that speak hclog
//
// Features:
//
//   - JSON output for production, colorized one-liners for development
//   - Automatic trace-context enrichment
//   - Event fields override same-named context fields
//   - Atomic, last-call-wins reconfiguration
//
// @req RQ-0202
// @design DS-0202
package logger
