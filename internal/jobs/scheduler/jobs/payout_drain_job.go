package jobs

import (
	"context"
	"fmt"
	"time"

	"uplinepay/internal/observability"
	payoutsProcessor "uplinepay/internal/payouts/processor"
)

// PayoutDrainJob drains the payout queue on an interval.
type PayoutDrainJob struct {
	drainer  *payoutsProcessor.Drainer
	logger   *observability.Logger
	interval time.Duration
}

// NewPayoutDrainJob creates a new payout drain job
func NewPayoutDrainJob(drainer *payoutsProcessor.Drainer, logger *observability.Logger, interval time.Duration) *PayoutDrainJob {
	if interval == 0 {
		interval = 60 * time.Second
	}

	return &PayoutDrainJob{
		drainer:  drainer,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *PayoutDrainJob) Name() string {
	return "payout_drain"
}

// Schedule returns how often the job should run
func (j *PayoutDrainJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one drain pass. Items left over after a full batch are
// picked up on the next tick.
func (j *PayoutDrainJob) Run(ctx context.Context) error {
	summary, err := j.drainer.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to drain payout queue: %w", err)
	}

	if summary.Failed > 0 {
		j.logger.Warn(ctx, fmt.Sprintf("payout drain left %d failed items for retry", summary.Failed))
	}
	return nil
}
