// Package shutdown provides graceful shutdown handling.
//
// A Handler collects teardown hooks during startup and runs them in
// reverse order when the process receives SIGINT/SIGTERM or when the
// driving context ends.
package shutdown
