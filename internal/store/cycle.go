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

// ErrCycleFull is returned when a position reservation loses the race
// against the cycle filling up.
var ErrCycleFull = errors.New("cycle full")

// ErrAlreadyEnrolled is returned when the enrollment's source key is
// already bound to a position.
var ErrAlreadyEnrolled = errors.New("source already enrolled")

const positionSourceConstraint = "cycle_positions_source_key_key"

const sqlCreateCycle = `
INSERT INTO global_cycles (rank_name, capacity, status)
VALUES ($1, $2, $3)
ON CONFLICT (rank_name) WHERE (status <> 'complete') DO NOTHING
RETURNING id, rank_name, capacity, filled_count, pool, status, completed_at, created_at, updated_at
`

const sqlGetOpenCycle = `
SELECT id, rank_name, capacity, filled_count, pool, status, completed_at, created_at, updated_at
FROM global_cycles
WHERE rank_name = $1 AND status <> $2
`

// GetOrCreateOpenCycle returns the tier's current open cycle, creating
// one with the given capacity if none exists. The partial unique index
// on non-complete cycles guarantees at most one open cycle per tier,
// whoever wins the creation race.
func (s *Store) GetOrCreateOpenCycle(ctx context.Context, rankName string, capacity int) (GlobalCycle, error) {
	var cycle GlobalCycle
	err := s.db.GetContext(ctx, &cycle, sqlCreateCycle, rankName, capacity, CycleStatusOpen)
	if err == nil {
		return cycle, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return GlobalCycle{}, fmt.Errorf("failed to create cycle: %w", err)
	}
	err = s.db.GetContext(ctx, &cycle, sqlGetOpenCycle, rankName, CycleStatusComplete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GlobalCycle{}, ErrNotFound
		}
		return GlobalCycle{}, fmt.Errorf("failed to get open cycle: %w", err)
	}
	return cycle, nil
}

// GetOpenCycle retrieves the tier's current non-complete cycle
// without creating one.
func (s *Store) GetOpenCycle(ctx context.Context, rankName string) (GlobalCycle, error) {
	var cycle GlobalCycle
	err := s.db.GetContext(ctx, &cycle, sqlGetOpenCycle, rankName, CycleStatusComplete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GlobalCycle{}, ErrNotFound
		}
		return GlobalCycle{}, fmt.Errorf("failed to get open cycle: %w", err)
	}
	return cycle, nil
}

const sqlGetCycleByID = `
SELECT id, rank_name, capacity, filled_count, pool, status, completed_at, created_at, updated_at
FROM global_cycles
WHERE id = $1
`

// GetCycleByID retrieves a global cycle by ID
func (s *Store) GetCycleByID(ctx context.Context, cycleID uuid.UUID) (GlobalCycle, error) {
	var cycle GlobalCycle
	err := s.db.GetContext(ctx, &cycle, sqlGetCycleByID, cycleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GlobalCycle{}, ErrNotFound
		}
		return GlobalCycle{}, fmt.Errorf("failed to get cycle by id: %w", err)
	}
	return cycle, nil
}

const sqlReservePosition = `
UPDATE global_cycles
SET filled_count = filled_count + 1,
    pool = pool + $2,
    status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND filled_count < capacity
RETURNING filled_count, capacity, pool
`

const sqlCreateCyclePosition = `
INSERT INTO cycle_positions (cycle_id, member_id, position, source_key)
VALUES ($1, $2, $3, $4)
`

// ReservedPosition is the outcome of a position reservation.
type ReservedPosition struct {
	Position int          `db:"filled_count"`
	Capacity int          `db:"capacity"`
	Pool     money.Amount `db:"pool"`
}

// EnrollPosition atomically claims the next sequential position in the
// cycle, folds the member's pool contribution in and records the
// assignment under sourceKey, all in one transaction. Two members can
// never receive the same position: the increment and the capacity
// check are one statement. A duplicate source key rolls the
// reservation back and returns ErrAlreadyEnrolled, so a replayed
// enrollment cannot occupy a second slot or double-count its
// contribution. ErrCycleFull means the caller must move to a fresh
// cycle.
func (s *Store) EnrollPosition(ctx context.Context, cycleID, memberID uuid.UUID, sourceKey string, contribution money.Amount) (ReservedPosition, error) {
	var reserved ReservedPosition
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &reserved, sqlReservePosition, cycleID, contribution, CycleStatusFilling)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCycleFull
			}
			return fmt.Errorf("failed to reserve position: %w", err)
		}
		_, err = tx.ExecContext(ctx, sqlCreateCyclePosition, cycleID, memberID, reserved.Position, sourceKey)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == positionSourceConstraint {
				return ErrAlreadyEnrolled
			}
			return fmt.Errorf("failed to record cycle position: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReservedPosition{}, err
	}
	return reserved, nil
}

const sqlGetPositionBySource = `
SELECT id, cycle_id, member_id, position, source_key, created_at
FROM cycle_positions
WHERE source_key = $1
`

// GetCyclePositionBySource returns the position an enrollment source
// already holds, or ErrNotFound when the source never enrolled.
func (s *Store) GetCyclePositionBySource(ctx context.Context, sourceKey string) (CyclePosition, error) {
	var pos CyclePosition
	err := s.db.GetContext(ctx, &pos, sqlGetPositionBySource, sourceKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CyclePosition{}, ErrNotFound
		}
		return CyclePosition{}, fmt.Errorf("failed to get cycle position by source: %w", err)
	}
	return pos, nil
}

const sqlListCyclePositions = `
SELECT id, cycle_id, member_id, position, source_key, created_at
FROM cycle_positions
WHERE cycle_id = $1
ORDER BY position ASC
`

// ListCyclePositions retrieves a cycle's assignments in position order
func (s *Store) ListCyclePositions(ctx context.Context, cycleID uuid.UUID) ([]CyclePosition, error) {
	var positions []CyclePosition
	err := s.db.SelectContext(ctx, &positions, sqlListCyclePositions, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle positions: %w", err)
	}
	return positions, nil
}

const sqlClaimCycleCompletion = `
UPDATE global_cycles
SET status = $2,
    completed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $3 AND filled_count >= capacity
`

// ClaimCycleCompletion marks a full cycle complete. It reports false
// when the cycle is not full yet or another caller already completed
// it, so completion side effects run at most once.
func (s *Store) ClaimCycleCompletion(ctx context.Context, cycleID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimCycleCompletion, cycleID, CycleStatusComplete, CycleStatusFilling)
	if err != nil {
		return false, fmt.Errorf("failed to claim cycle completion: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

const sqlGetMemberCyclePosition = `
SELECT cp.id, cp.cycle_id, cp.member_id, cp.position, cp.source_key, cp.created_at
FROM cycle_positions cp
JOIN global_cycles gc ON gc.id = cp.cycle_id
WHERE cp.member_id = $1 AND gc.rank_name = $2 AND gc.status <> $3
`

// GetMemberCyclePosition returns the member's position in the tier's
// open cycle, or ErrNotFound when the member is not enrolled.
func (s *Store) GetMemberCyclePosition(ctx context.Context, memberID uuid.UUID, rankName string) (CyclePosition, error) {
	var pos CyclePosition
	err := s.db.GetContext(ctx, &pos, sqlGetMemberCyclePosition, memberID, rankName, CycleStatusComplete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CyclePosition{}, ErrNotFound
		}
		return CyclePosition{}, fmt.Errorf("failed to get member cycle position: %w", err)
	}
	return pos, nil
}
