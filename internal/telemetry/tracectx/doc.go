// Package tracectx provides task-scoped trace context for AgentFlow.
//
// A Store holds the correlation identifiers (trace_id, execution_id,
// agent_id, node_id, ...) for one logical unit of work. The store is
// carried by context.Context, so every component below a task boundary
// sees the same identifiers without threading them explicitly:
//
//   - NewTask opens a fresh, empty store for a new unit of work
//   - Fork seeds an independent child store from the current snapshot,
//     so merges in the child and in the parent stay invisible to each
//     other after the fork
//   - Merge/Snapshot/Replace/Clear operate on the current task's store
//
// context.Context is Go's execution-scoped storage primitive: a
// goroutine spawned with a forked context inherits the parent's
// identifiers structurally, exactly once, at spawn time.
//
// @req RQ-0201
// @design DS-0201
package tracectx
