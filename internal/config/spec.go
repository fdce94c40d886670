// Package config defines the observability configuration structure.
package config

import "time"

// Config is the root configuration for the observability stack.
type Config struct {
	Log LogSection `koanf:"log"`
	Run RunSection `koanf:"run"`
}

// LogSection configures the logging pipeline.
type LogSection struct {
	// Level is the minimum severity (DEBUG, INFO, WARNING, ERROR,
	// CRITICAL; case-insensitive).
	Level string `koanf:"level"`

	// Format is the output format: json, human or auto. With auto,
	// LOG_FORMAT=json or ENV=production selects JSON.
	Format string `koanf:"format"`
}

// RunSection configures the demo run driver.
type RunSection struct {
	// Agents is the number of concurrent agents to simulate.
	Agents int `koanf:"agents"`

	// NodesPerAgent is the number of graph nodes each agent executes.
	NodesPerAgent int `koanf:"nodes_per_agent"`

	// StepInterval is the pause between node executions.
	StepInterval time.Duration `koanf:"step_interval"`
}
