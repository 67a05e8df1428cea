package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uplinepay/internal/money"

	"github.com/google/uuid"
)

// CreateIncomeEntryParams represents parameters for creating an
// income entry
type CreateIncomeEntryParams struct {
	BeneficiaryID  uuid.UUID
	SourceMemberID uuid.UUID
	SourceTxID     uuid.UUID
	Kind           string
	Level          int
	Amount         money.Amount
}

const sqlCreateIncomeEntry = `
INSERT INTO income_entries (beneficiary_id, source_member_id, source_tx_id, kind, level, amount, status)
VALUES ($1, $2, $3, $4, $5, $6, 'pending')
ON CONFLICT (source_tx_id, kind, level) DO NOTHING
RETURNING id, beneficiary_id, source_member_id, source_tx_id, kind, level, amount, status, created_at, updated_at
`

// CreateIncomeEntry inserts an income entry. A resumed distribution
// hitting an already-created (source, kind, level) slot gets the
// existing entry back instead of a duplicate.
func (s *Store) CreateIncomeEntry(ctx context.Context, params CreateIncomeEntryParams) (IncomeEntry, bool, error) {
	var entry IncomeEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateIncomeEntry,
		params.BeneficiaryID,
		params.SourceMemberID,
		params.SourceTxID,
		params.Kind,
		params.Level,
		params.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			existing, err := s.getIncomeEntryBySlot(ctx, params.SourceTxID, params.Kind, params.Level)
			if err != nil {
				return IncomeEntry{}, false, err
			}
			return existing, false, nil
		}
		return IncomeEntry{}, false, fmt.Errorf("failed to create income entry: %w", err)
	}
	return entry, true, nil
}

const sqlGetIncomeEntryBySlot = `
SELECT id, beneficiary_id, source_member_id, source_tx_id, kind, level, amount, status, created_at, updated_at
FROM income_entries
WHERE source_tx_id = $1 AND kind = $2 AND level = $3
`

func (s *Store) getIncomeEntryBySlot(ctx context.Context, sourceTxID uuid.UUID, kind string, level int) (IncomeEntry, error) {
	var entry IncomeEntry
	err := s.db.GetContext(ctx, &entry, sqlGetIncomeEntryBySlot, sourceTxID, kind, level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IncomeEntry{}, ErrNotFound
		}
		return IncomeEntry{}, fmt.Errorf("failed to get income entry by slot: %w", err)
	}
	return entry, nil
}

const sqlGetIncomeEntriesBySourceTx = `
SELECT id, beneficiary_id, source_member_id, source_tx_id, kind, level, amount, status, created_at, updated_at
FROM income_entries
WHERE source_tx_id = $1
ORDER BY kind, level
`

// GetIncomeEntriesBySourceTx retrieves every entry an activation
// transaction fanned out.
func (s *Store) GetIncomeEntriesBySourceTx(ctx context.Context, sourceTxID uuid.UUID) ([]IncomeEntry, error) {
	var entries []IncomeEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetIncomeEntriesBySourceTx, sourceTxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get income entries by source tx: %w", err)
	}
	return entries, nil
}

const sqlGetIncomeEntriesByBeneficiary = `
SELECT id, beneficiary_id, source_member_id, source_tx_id, kind, level, amount, status, created_at, updated_at
FROM income_entries
WHERE beneficiary_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetIncomeEntriesByBeneficiary retrieves a member's earnings history
func (s *Store) GetIncomeEntriesByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID, limit, offset int) ([]IncomeEntry, error) {
	var entries []IncomeEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetIncomeEntriesByBeneficiary, beneficiaryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get income entries by beneficiary: %w", err)
	}
	return entries, nil
}

const sqlMarkIncomeEntryCompleted = `
UPDATE income_entries
SET status = 'completed',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// MarkIncomeEntryCompleted moves an entry to completed. The only
// status transition an entry ever makes.
func (s *Store) MarkIncomeEntryCompleted(ctx context.Context, entryID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlMarkIncomeEntryCompleted, entryID)
	if err != nil {
		return fmt.Errorf("failed to mark income entry completed: %w", err)
	}
	return nil
}
