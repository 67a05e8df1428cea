package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uplinepay/internal/money"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EnqueuePayoutParams represents parameters for enqueueing a payout
type EnqueuePayoutParams struct {
	BeneficiaryID uuid.UUID
	Amount        money.Amount
	// SourceKey uniquely names the originating income entry or cycle
	// slot, so the same source can never enqueue twice.
	SourceKey     string
	IncomeEntryID *uuid.UUID
	CycleID       *uuid.UUID
}

const sqlEnqueuePayout = `
INSERT INTO payout_queue (beneficiary_id, amount, source_key, income_entry_id, cycle_id, status)
VALUES ($1, $2, $3, $4, $5, 'queued')
ON CONFLICT (source_key) DO NOTHING
RETURNING id, beneficiary_id, amount, source_key, income_entry_id, cycle_id, status, applied_at, created_at, updated_at
`

// EnqueuePayout appends a queued payout item. Re-enqueueing the same
// source is a no-op and reports created=false.
func (s *Store) EnqueuePayout(ctx context.Context, params EnqueuePayoutParams) (PayoutQueueItem, bool, error) {
	var item PayoutQueueItem
	err := s.db.GetContext(ctx, &item, sqlEnqueuePayout,
		params.BeneficiaryID,
		params.Amount,
		params.SourceKey,
		params.IncomeEntryID,
		params.CycleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			existing, err := s.getPayoutBySourceKey(ctx, params.SourceKey)
			if err != nil {
				return PayoutQueueItem{}, false, err
			}
			return existing, false, nil
		}
		return PayoutQueueItem{}, false, fmt.Errorf("failed to enqueue payout: %w", err)
	}
	return item, true, nil
}

const sqlGetPayoutBySourceKey = `
SELECT id, beneficiary_id, amount, source_key, income_entry_id, cycle_id, status, applied_at, created_at, updated_at
FROM payout_queue
WHERE source_key = $1
`

func (s *Store) getPayoutBySourceKey(ctx context.Context, sourceKey string) (PayoutQueueItem, error) {
	var item PayoutQueueItem
	err := s.db.GetContext(ctx, &item, sqlGetPayoutBySourceKey, sourceKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PayoutQueueItem{}, ErrNotFound
		}
		return PayoutQueueItem{}, fmt.Errorf("failed to get payout by source key: %w", err)
	}
	return item, nil
}

const sqlGetPayoutByID = `
SELECT id, beneficiary_id, amount, source_key, income_entry_id, cycle_id, status, applied_at, created_at, updated_at
FROM payout_queue
WHERE id = $1
`

// GetPayoutByID retrieves a payout queue item by ID
func (s *Store) GetPayoutByID(ctx context.Context, itemID uuid.UUID) (PayoutQueueItem, error) {
	var item PayoutQueueItem
	err := s.db.GetContext(ctx, &item, sqlGetPayoutByID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PayoutQueueItem{}, ErrNotFound
		}
		return PayoutQueueItem{}, fmt.Errorf("failed to get payout by id: %w", err)
	}
	return item, nil
}

const sqlListProcessablePayouts = `
SELECT id, beneficiary_id, amount, source_key, income_entry_id, cycle_id, status, applied_at, created_at, updated_at
FROM payout_queue
WHERE status IN ('queued', 'failed')
ORDER BY created_at ASC, id ASC
LIMIT $1
`

// ListProcessablePayouts returns the oldest queued or retryable items,
// bounded by limit. Drain order is FIFO on creation time with the id
// as a tiebreaker, which keeps batches deterministic.
func (s *Store) ListProcessablePayouts(ctx context.Context, limit int) ([]PayoutQueueItem, error) {
	var items []PayoutQueueItem
	err := s.db.SelectContext(ctx, &items, sqlListProcessablePayouts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list processable payouts: %w", err)
	}
	return items, nil
}

const sqlClaimPayout = `
UPDATE payout_queue
SET status = 'processing',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('queued', 'failed')
`

const sqlApplyPayout = `
UPDATE payout_queue
SET status = 'applied',
    applied_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
`

// ApplyPayout credits the beneficiary and marks the item applied in
// one database transaction. The initial conditional claim is the
// idempotency guard: an item that is already applied (or being
// processed elsewhere) reports applied=false with no balance change.
func (s *Store) ApplyPayout(ctx context.Context, item PayoutQueueItem) (bool, error) {
	applied := false
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlClaimPayout, item.ID)
		if err != nil {
			return fmt.Errorf("failed to claim payout: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if rows == 0 {
			return nil
		}

		if err := creditBalance(ctx, tx, item.BeneficiaryID, item.Amount); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, sqlApplyPayout, item.ID); err != nil {
			return fmt.Errorf("failed to mark payout applied: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

const sqlMarkPayoutFailed = `
UPDATE payout_queue
SET status = 'failed',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('queued', 'processing')
`

// MarkPayoutFailed tags an item for retry on the next drain.
func (s *Store) MarkPayoutFailed(ctx context.Context, itemID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlMarkPayoutFailed, itemID)
	if err != nil {
		return fmt.Errorf("failed to mark payout failed: %w", err)
	}
	return nil
}
