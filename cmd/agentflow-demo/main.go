// Package main provides the entry point for agentflow-demo.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/veyra/agentflow-go/internal/config"
	"github.com/veyra/agentflow-go/internal/infra/buildinfo"
	"github.com/veyra/agentflow-go/internal/infra/confloader"
	"github.com/veyra/agentflow-go/internal/infra/shutdown"
	"github.com/veyra/agentflow-go/internal/telemetry/logger"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:    "agentflow-demo",
		Usage:   "AgentFlow observability demo driver",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (YAML)",
				EnvVars: []string{"AGENTFLOW_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Minimum log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Log format: json, human or auto",
			},
			&cli.IntFlag{
				Name:  "agents",
				Usage: "Number of concurrent agents to simulate",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if err := logger.Configure(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		return err
	}

	handler := shutdown.NewHandler(5 * time.Second)

	// Live log-level reload on config file edits.
	if path := c.String("config"); path != "" {
		watcher, err := confloader.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		watcher.OnChange(func(changed string) {
			reloadLogConfig(path)
		})
		if err := watcher.Watch(path); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		watcher.StartAsync()
		handler.OnShutdown(func(ctx context.Context) error {
			return watcher.Stop()
		})
	}

	runCtx, cancel := context.WithCancel(c.Context)
	handler.OnShutdown(func(ctx context.Context) error {
		cancel()
		return nil
	})

	go func() {
		defer cancel()
		simulateRun(runCtx, cfg)
	}()

	return handler.WaitContext(runCtx)
}

// loadConfig assembles configuration: defaults < file < env < flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	overrides := map[string]any{}
	if c.IsSet("level") {
		overrides["log.level"] = c.String("level")
	}
	if c.IsSet("format") {
		overrides["log.format"] = c.String("format")
	}
	if c.IsSet("agents") {
		overrides["run.agents"] = c.Int("agents")
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, fmt.Errorf("apply flag overrides: %w", err)
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}
	return cfg, nil
}

// reloadLogConfig re-reads the config file and applies the log level.
// Formatter and sink stay bound; only the threshold moves.
func reloadLogConfig(path string) {
	ctx := context.Background()
	log := logger.Named("demo")

	cfg := config.Default()
	loader := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		log.Warning(ctx, "config reload failed", "error", err)
		return
	}

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warning(ctx, "config reload rejected", "error", err)
		return
	}
	log.Info(ctx, "log level updated", "event", "config_reload")
}
