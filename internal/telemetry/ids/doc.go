// Package ids generates correlation identifiers for AgentFlow runs.
//
// Identifiers are prefixed lowercase ULIDs: sortable, globally unique
// and safe to generate concurrently. The logging core never generates
// ids itself; producers (runtime, executors) mint them here and merge
// them into the task's trace context.
package ids
