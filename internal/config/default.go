// Package config defines the observability configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "auto"

	DefaultAgents        = 2
	DefaultNodesPerAgent = 3
	DefaultStepInterval  = 50 * time.Millisecond
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Run: RunSection{
			Agents:        DefaultAgents,
			NodesPerAgent: DefaultNodesPerAgent,
			StepInterval:  DefaultStepInterval,
		},
	}
}
