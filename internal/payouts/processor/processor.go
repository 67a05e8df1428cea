package processor

import (
	"context"

	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"
)

// Summary reports one drain pass over the payout queue.
type Summary struct {
	Applied    int          `json:"applied"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	TotalMoved money.Amount `json:"total_moved"`
}

// Drainer applies queued payout items to member balances in bounded
// batches.
type Drainer struct {
	store     PayoutStore
	events    EventPublisher
	batchSize int
	logger    *observability.Logger
}

// New creates a new Drainer
func New(store PayoutStore, events EventPublisher, batchSize int, logger *observability.Logger) *Drainer {
	return &Drainer{
		store:     store,
		events:    events,
		batchSize: batchSize,
		logger:    logger,
	}
}

// ProcessQueue drains up to one batch of queued and retryable items.
// Each item is claimed and applied atomically by the store, so a
// concurrent drainer sees the claim fail and skips the item. One bad
// item never stops the batch.
func (d *Drainer) ProcessQueue(ctx context.Context) (Summary, error) {
	items, err := d.store.ListProcessablePayouts(ctx, d.batchSize)
	if err != nil {
		d.logger.Error(ctx, "failed to list processable payouts", err)
		return Summary{}, err
	}

	var summary Summary
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		d.processItem(ctx, item, &summary)
	}

	if summary.Applied > 0 || summary.Failed > 0 {
		d.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "applied", Value: summary.Applied},
			observability.Field{Key: "failed", Value: summary.Failed},
			observability.Field{Key: "skipped", Value: summary.Skipped},
			observability.Field{Key: "total_moved", Value: summary.TotalMoved.String()},
		), "payout queue drained")
	}
	return summary, nil
}

func (d *Drainer) processItem(ctx context.Context, item store.PayoutQueueItem, summary *Summary) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payout_id", Value: item.ID.String()},
		observability.Field{Key: "beneficiary_id", Value: item.BeneficiaryID.String()},
	)

	applied, err := d.store.ApplyPayout(ctx, item)
	if err != nil {
		d.logger.Error(ctx, "failed to apply payout", err)
		if markErr := d.store.MarkPayoutFailed(ctx, item.ID); markErr != nil {
			d.logger.Error(ctx, "failed to mark payout failed", markErr)
		}
		summary.Failed++
		return
	}
	if !applied {
		// Lost the claim to a concurrent drainer.
		summary.Skipped++
		return
	}

	if item.IncomeEntryID != nil {
		if err := d.store.MarkIncomeEntryCompleted(ctx, *item.IncomeEntryID); err != nil {
			// The balance already moved; log and keep going.
			d.logger.Error(ctx, "failed to mark income entry completed", err)
		}
	}

	d.events.PublishPayoutApplied(ctx, item)
	summary.Applied++
	summary.TotalMoved += item.Amount
}
