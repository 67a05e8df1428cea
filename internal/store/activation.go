package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uplinepay/internal/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

var (
	// ErrPendingActivationExists means the member already has a
	// non-terminal activation transaction. Enforced by the partial
	// unique index, not by a prior read.
	ErrPendingActivationExists = errors.New("pending activation exists")
	// ErrProofAlreadyUsed means the payment proof is attached to
	// another transaction.
	ErrProofAlreadyUsed = errors.New("payment proof already used")
)

const pgUniqueViolation = "23505"

const proofUniqueConstraint = "activation_transactions_proof_ref_key"

// CreateActivationParams represents parameters for creating an
// activation transaction
type CreateActivationParams struct {
	MemberID      uuid.UUID
	RankName      string
	Amount        money.Amount
	PaymentMethod string
	ProofRef      *string
	TopUp         bool
}

const sqlCreatePendingActivation = `
INSERT INTO activation_transactions (member_id, rank_name, amount, payment_method, proof_ref, top_up, status)
VALUES ($1, $2, $3, $4, $5, $6, 'pending')
ON CONFLICT (member_id) WHERE (status = 'pending') DO NOTHING
RETURNING id, member_id, rank_name, amount, payment_method, proof_ref, top_up, status, remainder_amount, distributed_at, created_at, updated_at
`

// CreatePendingActivation inserts a pending activation transaction.
// The uniqueness of "one pending transaction per member" and of the
// payment proof are both enforced inside this single statement; there
// is deliberately no check-then-insert window.
func (s *Store) CreatePendingActivation(ctx context.Context, params CreateActivationParams) (ActivationTransaction, error) {
	var tx ActivationTransaction
	err := s.db.GetContext(ctx, &tx, sqlCreatePendingActivation,
		params.MemberID,
		params.RankName,
		params.Amount,
		params.PaymentMethod,
		params.ProofRef,
		params.TopUp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The partial unique index swallowed the insert: a pending
			// transaction for this member already exists.
			return ActivationTransaction{}, ErrPendingActivationExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == proofUniqueConstraint {
			return ActivationTransaction{}, ErrProofAlreadyUsed
		}
		return ActivationTransaction{}, fmt.Errorf("failed to create pending activation: %w", err)
	}
	return tx, nil
}

const sqlCreateCompletedActivation = `
INSERT INTO activation_transactions (member_id, rank_name, amount, payment_method, proof_ref, top_up, status)
SELECT $1, $2, $3, $4, $5, $6, 'completed'
WHERE NOT EXISTS (
    SELECT 1 FROM activation_transactions WHERE member_id = $1 AND status = 'pending'
)
RETURNING id, member_id, rank_name, amount, payment_method, proof_ref, top_up, status, remainder_amount, distributed_at, created_at, updated_at
`

// CreateCompletedActivationWithDebit debits the member's available
// balance and records a completed activation transaction in one
// database transaction. The debit is conditional, so concurrent
// attempts against the same balance cannot both succeed.
func (s *Store) CreateCompletedActivationWithDebit(ctx context.Context, params CreateActivationParams) (ActivationTransaction, error) {
	var created ActivationTransaction
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		// The debit locks the member row, serializing balance-paid
		// activations per member.
		if err := debitBalance(ctx, tx, params.MemberID, params.Amount); err != nil {
			return err
		}
		err := tx.GetContext(ctx, &created, sqlCreateCompletedActivation,
			params.MemberID,
			params.RankName,
			params.Amount,
			params.PaymentMethod,
			params.ProofRef,
			params.TopUp)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPendingActivationExists
			}
			return fmt.Errorf("failed to create completed activation: %w", err)
		}
		return nil
	})
	if err != nil {
		return ActivationTransaction{}, err
	}
	return created, nil
}

const sqlGetActivationByID = `
SELECT id, member_id, rank_name, amount, payment_method, proof_ref, top_up, status, remainder_amount, distributed_at, created_at, updated_at
FROM activation_transactions
WHERE id = $1
`

// GetActivationByID retrieves an activation transaction by ID
func (s *Store) GetActivationByID(ctx context.Context, txID uuid.UUID) (ActivationTransaction, error) {
	var tx ActivationTransaction
	err := s.db.GetContext(ctx, &tx, sqlGetActivationByID, txID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ActivationTransaction{}, ErrNotFound
		}
		return ActivationTransaction{}, fmt.Errorf("failed to get activation by id: %w", err)
	}
	return tx, nil
}

const sqlGetActivationsByMember = `
SELECT id, member_id, rank_name, amount, payment_method, proof_ref, top_up, status, remainder_amount, distributed_at, created_at, updated_at
FROM activation_transactions
WHERE member_id = $1
ORDER BY created_at DESC
`

// GetActivationsByMember retrieves a member's activation history
func (s *Store) GetActivationsByMember(ctx context.Context, memberID uuid.UUID) ([]ActivationTransaction, error) {
	var txs []ActivationTransaction
	err := s.db.SelectContext(ctx, &txs, sqlGetActivationsByMember, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activations by member: %w", err)
	}
	return txs, nil
}

const sqlTransitionActivationStatus = `
UPDATE activation_transactions
SET status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $2
RETURNING id, member_id, rank_name, amount, payment_method, proof_ref, top_up, status, remainder_amount, distributed_at, created_at, updated_at
`

// TransitionActivationStatus moves a transaction from one status to
// another, failing with ErrNotFound if it is not currently in the
// expected status. Completion races resolve to a single winner here.
func (s *Store) TransitionActivationStatus(ctx context.Context, txID uuid.UUID, from, to string) (ActivationTransaction, error) {
	var tx ActivationTransaction
	err := s.db.GetContext(ctx, &tx, sqlTransitionActivationStatus, txID, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ActivationTransaction{}, ErrNotFound
		}
		return ActivationTransaction{}, fmt.Errorf("failed to transition activation status: %w", err)
	}
	return tx, nil
}

const sqlClaimActivationDistribution = `
UPDATE activation_transactions
SET distributed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'completed' AND distributed_at IS NULL
`

// ClaimActivationDistribution stamps a completed transaction as
// distributed. It reports false when another caller already owns the
// distribution, making the income fan-out at-most-once.
func (s *Store) ClaimActivationDistribution(ctx context.Context, txID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimActivationDistribution, txID)
	if err != nil {
		return false, fmt.Errorf("failed to claim activation distribution: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

const sqlSetActivationRemainder = `
UPDATE activation_transactions
SET remainder_amount = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetActivationRemainder records the rounding remainder the platform
// retained from the transaction's income splits.
func (s *Store) SetActivationRemainder(ctx context.Context, txID uuid.UUID, remainder money.Amount) error {
	_, err := s.db.ExecContext(ctx, sqlSetActivationRemainder, txID, remainder)
	if err != nil {
		return fmt.Errorf("failed to set activation remainder: %w", err)
	}
	return nil
}
