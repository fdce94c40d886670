// Package tracectx provides task-scoped trace context for AgentFlow.
package tracectx

import "context"

// ctxKey is an unexported key type to avoid context collisions.
type ctxKey struct{}

// NewTask returns a context carrying a fresh, empty store.
//
// Called at the boundary of a new logical unit of work that does not
// inherit a parent's identifiers (e.g. the start of a run).
func NewTask(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, NewStore())
}

// Fork returns a context carrying a new store seeded with a copy of the
// current mapping. Merges in the forked context are not visible through
// ctx, and merges through ctx after the fork are not visible in the
// forked context.
//
// Every goroutine spawned from a traced task should receive a forked
// context.
func Fork(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, newStoreFrom(Snapshot(ctx)))
}

// FromContext returns the store carried by ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok
}

// Merge merges updates into the current task's store, last-writer-wins
// per key. Without a task boundary (NewTask/Fork) there is no store to
// merge into and the call is a no-op.
func Merge(ctx context.Context, updates map[string]any) {
	if s, ok := FromContext(ctx); ok {
		s.Merge(updates)
	}
}

// Snapshot returns a copy of the current task's mapping, or an empty
// mapping when ctx carries no store.
func Snapshot(ctx context.Context) map[string]any {
	if s, ok := FromContext(ctx); ok {
		return s.Get()
	}
	return map[string]any{}
}

// Replace discards the current task's mapping and installs m.
func Replace(ctx context.Context, m map[string]any) {
	if s, ok := FromContext(ctx); ok {
		s.Replace(m)
	}
}

// Clear resets the current task's mapping to empty. Sibling and parent
// tasks are unaffected.
func Clear(ctx context.Context) {
	if s, ok := FromContext(ctx); ok {
		s.Clear()
	}
}
