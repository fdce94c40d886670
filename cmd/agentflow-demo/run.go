// Package main provides the entry point for agentflow-demo.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/veyra/agentflow-go/internal/config"
	"github.com/veyra/agentflow-go/internal/telemetry/ids"
	"github.com/veyra/agentflow-go/internal/telemetry/logger"
	"github.com/veyra/agentflow-go/internal/telemetry/tracectx"
)

var models = []string{"sonnet-large", "haiku-small", "relay-mini"}

// simulateRun drives a synthetic multi-agent execution. Each agent
// runs in its own goroutine with a forked trace context so records
// from concurrent agents never bleed into each other.
func simulateRun(ctx context.Context, cfg *config.Config) {
	log := logger.Named("runtime")

	traceID, err := ids.NewTraceID()
	if err != nil {
		log.Critical(ctx, "id generation failed", "error", err)
		return
	}
	execID, err := ids.NewExecutionID()
	if err != nil {
		log.Critical(ctx, "id generation failed", "error", err)
		return
	}
	goalID, err := ids.NewGoalID()
	if err != nil {
		log.Critical(ctx, "id generation failed", "error", err)
		return
	}

	ctx = tracectx.NewTask(ctx)
	tracectx.Merge(ctx, map[string]any{
		"trace_id":     traceID,
		"execution_id": execID,
		"goal_id":      goalID,
	})

	log.Info(ctx, "run started",
		"event", "run_start",
		"agents", cfg.Run.Agents)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Run.Agents; i++ {
		agentID := fmt.Sprintf("agent-%d", i)

		wg.Add(1)
		go func() {
			defer wg.Done()
			runAgent(tracectx.Fork(ctx), cfg, agentID)
		}()
	}
	wg.Wait()

	log.Info(ctx, "run finished", "event", "run_complete")
}

// runAgent executes the node sequence for one agent. The context
// carries the agent's own forked store; merges here stay invisible to
// sibling agents.
func runAgent(ctx context.Context, cfg *config.Config, agentID string) {
	tracectx.Merge(ctx, map[string]any{"agent_id": agentID})

	log := logger.Named("graph")
	log.Debug(ctx, "agent scheduled", "event", "agent_start")

	for n := 0; n < cfg.Run.NodesPerAgent; n++ {
		select {
		case <-ctx.Done():
			log.Warning(ctx, "agent interrupted", "event", "agent_abort")
			return
		case <-time.After(cfg.Run.StepInterval):
		}

		// The first agent's last node always fails, so every run shows
		// the error path at least once.
		fail := agentID == "agent-0" && n == cfg.Run.NodesPerAgent-1
		runNode(tracectx.Fork(ctx), log, n, fail)
	}

	log.Debug(ctx, "agent finished", "event", "agent_complete")
}

func runNode(ctx context.Context, log *logger.Logger, n int, fail bool) {
	nodeID := fmt.Sprintf("node-%d", n)
	tracectx.Merge(ctx, map[string]any{"node_id": nodeID})

	log.Debug(ctx, "node dispatched", "event", "node_start")

	latency := 20 + rand.Intn(180)
	tokens := 50 + rand.Intn(950)

	if fail {
		log.Error(ctx, "node execution failed",
			"event", "node_error",
			"error", errors.New("model backend timeout"),
			"latency_ms", latency)
		return
	}

	log.Info(ctx, "node completed",
		"event", "node_complete",
		"latency_ms", latency,
		"tokens_used", tokens,
		"model", models[rand.Intn(len(models))])
}
