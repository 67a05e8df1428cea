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

// ErrWithdrawalNotPending is returned when a resolution races another
// admin action and loses: the withdrawal is already terminal.
var ErrWithdrawalNotPending = errors.New("withdrawal not pending")

// CreateWithdrawalParams represents parameters for creating a
// withdrawal request
type CreateWithdrawalParams struct {
	MemberID  uuid.UUID
	Amount    money.Amount
	Method    string
	Deduction money.Amount
	NetAmount money.Amount
}

const sqlCreateWithdrawal = `
INSERT INTO withdrawals (member_id, amount, method, deduction, net_amount, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
RETURNING id, member_id, amount, method, deduction, net_amount, status, resolved_at, created_at, updated_at
`

// CreateWithdrawalWithDebit reserves the gross amount out of the
// member's available balance and records the pending withdrawal in a
// single database transaction. The conditional debit rejects requests
// the balance cannot cover.
func (s *Store) CreateWithdrawalWithDebit(ctx context.Context, params CreateWithdrawalParams) (Withdrawal, error) {
	var withdrawal Withdrawal
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := debitBalance(ctx, tx, params.MemberID, params.Amount); err != nil {
			return err
		}
		err := tx.GetContext(ctx, &withdrawal, sqlCreateWithdrawal,
			params.MemberID,
			params.Amount,
			params.Method,
			params.Deduction,
			params.NetAmount)
		if err != nil {
			return fmt.Errorf("failed to create withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		return Withdrawal{}, err
	}
	return withdrawal, nil
}

const sqlGetWithdrawalByID = `
SELECT id, member_id, amount, method, deduction, net_amount, status, resolved_at, created_at, updated_at
FROM withdrawals
WHERE id = $1
`

// GetWithdrawalByID retrieves a withdrawal by ID
func (s *Store) GetWithdrawalByID(ctx context.Context, withdrawalID uuid.UUID) (Withdrawal, error) {
	var withdrawal Withdrawal
	err := s.db.GetContext(ctx, &withdrawal, sqlGetWithdrawalByID, withdrawalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Withdrawal{}, ErrNotFound
		}
		return Withdrawal{}, fmt.Errorf("failed to get withdrawal by id: %w", err)
	}
	return withdrawal, nil
}

const sqlGetWithdrawalsByMember = `
SELECT id, member_id, amount, method, deduction, net_amount, status, resolved_at, created_at, updated_at
FROM withdrawals
WHERE member_id = $1
ORDER BY created_at DESC
`

// GetWithdrawalsByMember retrieves a member's withdrawal history
func (s *Store) GetWithdrawalsByMember(ctx context.Context, memberID uuid.UUID) ([]Withdrawal, error) {
	var withdrawals []Withdrawal
	err := s.db.SelectContext(ctx, &withdrawals, sqlGetWithdrawalsByMember, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals by member: %w", err)
	}
	return withdrawals, nil
}

const sqlListPendingWithdrawals = `
SELECT id, member_id, amount, method, deduction, net_amount, status, resolved_at, created_at, updated_at
FROM withdrawals
WHERE status = 'pending'
ORDER BY created_at ASC
`

// ListPendingWithdrawals retrieves withdrawals awaiting admin review
func (s *Store) ListPendingWithdrawals(ctx context.Context) ([]Withdrawal, error) {
	var withdrawals []Withdrawal
	err := s.db.SelectContext(ctx, &withdrawals, sqlListPendingWithdrawals)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending withdrawals: %w", err)
	}
	return withdrawals, nil
}

const sqlResolveWithdrawal = `
UPDATE withdrawals
SET status = $2,
    resolved_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING id, member_id, amount, method, deduction, net_amount, status, resolved_at, created_at, updated_at
`

// CompleteWithdrawal marks a pending withdrawal completed. The gross
// amount was already debited at request time, so no balance moves.
func (s *Store) CompleteWithdrawal(ctx context.Context, withdrawalID uuid.UUID) (Withdrawal, error) {
	var withdrawal Withdrawal
	err := s.db.GetContext(ctx, &withdrawal, sqlResolveWithdrawal, withdrawalID, WithdrawalStatusCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Withdrawal{}, ErrWithdrawalNotPending
		}
		return Withdrawal{}, fmt.Errorf("failed to complete withdrawal: %w", err)
	}
	return withdrawal, nil
}

// ReverseWithdrawal resolves a pending withdrawal to the given
// terminal status (rejected or cancelled) and restores the gross
// amount to the member's available balance, in one database
// transaction. The conditional status transition makes the restore
// happen exactly once no matter how many admins click.
func (s *Store) ReverseWithdrawal(ctx context.Context, withdrawalID uuid.UUID, status string) (Withdrawal, error) {
	var withdrawal Withdrawal
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &withdrawal, sqlResolveWithdrawal, withdrawalID, status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrWithdrawalNotPending
			}
			return fmt.Errorf("failed to resolve withdrawal: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlRestoreBalance, withdrawal.MemberID, withdrawal.Amount); err != nil {
			return fmt.Errorf("failed to restore balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return Withdrawal{}, err
	}
	return withdrawal, nil
}
