// Package main provides the entry point for agentflow-demo.
//
// agentflow-demo drives a simulated multi-agent run through the
// AgentFlow observability stack: it mints correlation ids, opens a
// task-scoped trace context, forks it into concurrent agent and node
// tasks, and emits structured records in the configured format. Useful
// for eyeballing output formats and verifying context propagation end
// to end.
package main
