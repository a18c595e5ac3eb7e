package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/pfrederiksen/vcal-notify/internal/config"
	"github.com/pfrederiksen/vcal-notify/internal/event"
	"github.com/pfrederiksen/vcal-notify/internal/logger"
	"github.com/pfrederiksen/vcal-notify/internal/pipeline"
)

// Request is the scheduled-event payload, e.g. {"mode":"week"}
type Request struct {
	Mode string `json:"mode"`
}

func handleRequest(ctx context.Context, req Request) (pipeline.Result, error) {
	logger.ResetMetrics()

	mode, err := event.ParseMode(req.Mode)
	if err != nil {
		return pipeline.Result{}, err
	}

	cfg, err := config.Load("")
	if err != nil {
		return pipeline.Result{}, err
	}

	log := logger.New(cfg.Level(), os.Stdout).WithField("component", "vcal-notify")
	logger.SetDefault(log)

	log.Info("starting up", logger.Fields{"mode": string(mode)})
	defer log.Info("shutting down", nil)

	runner, err := pipeline.New(ctx, cfg, nil)
	if err != nil {
		return pipeline.Result{}, err
	}

	result := runner.Run(ctx, mode)
	log.Info("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return result, nil
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: setting GOMAXPROCS: %v\n", err)
	}

	lambda.Start(handleRequest)
}
