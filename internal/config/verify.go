// Package config defines the observability configuration structure.
package config

import (
	"errors"
	"fmt"

	"github.com/veyra/agentflow-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return verifyRun(&cfg.Run)
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch cfg.Format {
	case logger.FormatJSON, logger.FormatHuman, logger.FormatAuto:
		return nil
	default:
		return fmt.Errorf("log.format must be json, human or auto, got %q", cfg.Format)
	}
}

func verifyRun(cfg *RunSection) error {
	if cfg.Agents < 1 {
		return errors.New("run.agents must be at least 1")
	}
	if cfg.NodesPerAgent < 1 {
		return errors.New("run.nodes_per_agent must be at least 1")
	}
	if cfg.StepInterval < 0 {
		return errors.New("run.step_interval must not be negative")
	}
	return nil
}
