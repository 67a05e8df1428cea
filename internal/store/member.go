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

// ErrBalanceTooLow is returned when a conditional debit finds less
// than the requested amount available.
var ErrBalanceTooLow = errors.New("balance too low")

// ErrEmailTaken is returned when a new member's email collides with
// an existing one.
var ErrEmailTaken = errors.New("email already registered")

// CreateMemberParams represents parameters for creating a member
type CreateMemberParams struct {
	Email     string
	FirstName string
	LastName  string
	SponsorID *uuid.UUID
}

const sqlCreateMember = `
INSERT INTO members (email, first_name, last_name, sponsor_id, current_rank)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, email, first_name, last_name, sponsor_id, current_rank, available_balance, pending_balance, total_earnings, direct_referrals, team_size, activated_at, created_at, updated_at
`

// CreateMember creates a new member
func (s *Store) CreateMember(ctx context.Context, params CreateMemberParams) (Member, error) {
	var member Member
	err := s.db.GetContext(ctx, &member, sqlCreateMember,
		params.Email,
		params.FirstName,
		params.LastName,
		params.SponsorID,
		RankInactive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Member{}, ErrEmailTaken
		}
		return Member{}, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

const sqlGetMemberByID = `
SELECT id, email, first_name, last_name, sponsor_id, current_rank, available_balance, pending_balance, total_earnings, direct_referrals, team_size, activated_at, created_at, updated_at
FROM members
WHERE id = $1
`

// GetMemberByID retrieves a member by ID
func (s *Store) GetMemberByID(ctx context.Context, memberID uuid.UUID) (Member, error) {
	var member Member
	err := s.db.GetContext(ctx, &member, sqlGetMemberByID, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, fmt.Errorf("failed to get member by id: %w", err)
	}
	return member, nil
}

const sqlGetMemberByEmail = `
SELECT id, email, first_name, last_name, sponsor_id, current_rank, available_balance, pending_balance, total_earnings, direct_referrals, team_size, activated_at, created_at, updated_at
FROM members
WHERE email = $1
`

// GetMemberByEmail retrieves a member by email
func (s *Store) GetMemberByEmail(ctx context.Context, email string) (Member, error) {
	var member Member
	err := s.db.GetContext(ctx, &member, sqlGetMemberByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, fmt.Errorf("failed to get member by email: %w", err)
	}
	return member, nil
}

const sqlGetSponsorID = `
SELECT sponsor_id FROM members WHERE id = $1
`

// GetSponsorID returns the member's direct sponsor, or nil at the top
// of the chain.
func (s *Store) GetSponsorID(ctx context.Context, memberID uuid.UUID) (*uuid.UUID, error) {
	var sponsorID *uuid.UUID
	err := s.db.GetContext(ctx, &sponsorID, sqlGetSponsorID, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor id: %w", err)
	}
	return sponsorID, nil
}

const sqlCreditBalance = `
UPDATE members
SET available_balance = available_balance + $2,
    total_earnings = total_earnings + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// CreditBalance atomically adds amount to the member's available
// balance and lifetime earnings.
func (s *Store) CreditBalance(ctx context.Context, memberID uuid.UUID, amount money.Amount) error {
	return creditBalance(ctx, s.db, memberID, amount)
}

func creditBalance(ctx context.Context, ext sqlx.ExtContext, memberID uuid.UUID, amount money.Amount) error {
	res, err := ext.ExecContext(ctx, sqlCreditBalance, memberID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit balance: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlRestoreBalance = `
UPDATE members
SET available_balance = available_balance + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlDebitBalance = `
UPDATE members
SET available_balance = available_balance - $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND available_balance >= $2
`

// DebitBalance atomically subtracts amount from the member's available
// balance. The condition makes insufficient funds lose the update
// rather than drive the balance negative.
func (s *Store) DebitBalance(ctx context.Context, memberID uuid.UUID, amount money.Amount) error {
	return debitBalance(ctx, s.db, memberID, amount)
}

func debitBalance(ctx context.Context, ext sqlx.ExtContext, memberID uuid.UUID, amount money.Amount) error {
	res, err := ext.ExecContext(ctx, sqlDebitBalance, memberID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrBalanceTooLow
	}
	return nil
}

const sqlSetMemberRank = `
UPDATE members
SET current_rank = $2,
    activated_at = COALESCE(activated_at, CURRENT_TIMESTAMP),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetMemberRank updates the member's current rank, stamping the first
// activation time.
func (s *Store) SetMemberRank(ctx context.Context, memberID uuid.UUID, rankName string) error {
	_, err := s.db.ExecContext(ctx, sqlSetMemberRank, memberID, rankName)
	if err != nil {
		return fmt.Errorf("failed to set member rank: %w", err)
	}
	return nil
}

const sqlIncrementDirectReferrals = `
UPDATE members
SET direct_referrals = direct_referrals + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementDirectReferrals bumps the sponsor's direct referral counter.
func (s *Store) IncrementDirectReferrals(ctx context.Context, memberID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementDirectReferrals, memberID)
	if err != nil {
		return fmt.Errorf("failed to increment direct referrals: %w", err)
	}
	return nil
}

const sqlIncrementTeamSize = `
UPDATE members
SET team_size = team_size + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementTeamSize bumps an ancestor's team size counter.
func (s *Store) IncrementTeamSize(ctx context.Context, memberID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementTeamSize, memberID)
	if err != nil {
		return fmt.Errorf("failed to increment team size: %w", err)
	}
	return nil
}
