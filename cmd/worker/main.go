package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"uplinepay/internal/bootstrap"
	"uplinepay/internal/config"
	"uplinepay/internal/jobs/scheduler"
	"uplinepay/internal/jobs/scheduler/jobs"
	"uplinepay/internal/observability"
)

// Standalone settlement worker: drains the payout queue on an
// interval without serving HTTP traffic.
func main() {
	logger := observability.NewLogger()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}
	defer deps.Cleanup()

	sched := scheduler.New(logger)
	sched.Register(jobs.NewPayoutDrainJob(deps.PayoutDrainer, logger, cfg.Payouts.DrainInterval))

	logger.Info(ctx, "Starting settlement worker")
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("scheduler stopped with error: %s", err)
	}

	logger.Info(ctx, "Settlement worker stopped")
}
