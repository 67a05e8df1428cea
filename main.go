package main

import (
	"context"
	"errors"
	"log"

	"uplinepay/internal/bootstrap"
	"uplinepay/internal/config"
	"uplinepay/internal/jobs/scheduler"
	"uplinepay/internal/jobs/scheduler/jobs"
	"uplinepay/internal/observability"
	"uplinepay/internal/server"
)

func main() {
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}

	// Interval payout drain runs alongside the API; cmd/worker runs
	// the same job standalone when the drain is split out.
	sched := scheduler.New(logger)
	sched.Register(jobs.NewPayoutDrainJob(deps.PayoutDrainer, logger, cfg.Payouts.DrainInterval))
	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "scheduler stopped with error", err)
		}
	}()

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %s", err)
	}
}
