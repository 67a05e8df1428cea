package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"uplinepay/internal/money"

	"github.com/google/uuid"
)

// CreateRankParams represents parameters for creating a rank tier
type CreateRankParams struct {
	Name                string
	RankIndex           int
	ActivationAmount    money.Amount
	LevelIncomeEnabled  bool
	GlobalIncomeEnabled bool
	CycleSize           int
}

const sqlCreateRank = `
INSERT INTO ranks (name, rank_index, activation_amount, level_income_enabled, global_income_enabled, cycle_size)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, rank_index, activation_amount, level_income_enabled, global_income_enabled, cycle_size, created_at, updated_at
`

// CreateRank creates a new rank tier
func (s *Store) CreateRank(ctx context.Context, params CreateRankParams) (Rank, error) {
	var rank Rank
	err := s.db.GetContext(ctx, &rank, sqlCreateRank,
		params.Name,
		params.RankIndex,
		params.ActivationAmount,
		params.LevelIncomeEnabled,
		params.GlobalIncomeEnabled,
		params.CycleSize)
	if err != nil {
		return Rank{}, fmt.Errorf("failed to create rank: %w", err)
	}
	return rank, nil
}

const sqlGetRankByName = `
SELECT id, name, rank_index, activation_amount, level_income_enabled, global_income_enabled, cycle_size, created_at, updated_at
FROM ranks
WHERE name = $1
`

// GetRankByName retrieves a rank tier by name
func (s *Store) GetRankByName(ctx context.Context, name string) (Rank, error) {
	var rank Rank
	err := s.db.GetContext(ctx, &rank, sqlGetRankByName, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Rank{}, ErrNotFound
		}
		return Rank{}, fmt.Errorf("failed to get rank by name: %w", err)
	}
	return rank, nil
}

const sqlListRanks = `
SELECT id, name, rank_index, activation_amount, level_income_enabled, global_income_enabled, cycle_size, created_at, updated_at
FROM ranks
ORDER BY rank_index ASC
`

// ListRanks retrieves all rank tiers in ladder order
func (s *Store) ListRanks(ctx context.Context) ([]Rank, error) {
	var ranks []Rank
	err := s.db.SelectContext(ctx, &ranks, sqlListRanks)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranks: %w", err)
	}
	return ranks, nil
}

const sqlUpdateRank = `
UPDATE ranks
SET activation_amount = $2,
    level_income_enabled = $3,
    global_income_enabled = $4,
    cycle_size = $5,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, name, rank_index, activation_amount, level_income_enabled, global_income_enabled, cycle_size, created_at, updated_at
`

// UpdateRankParams represents parameters for updating a rank tier
type UpdateRankParams struct {
	ActivationAmount    money.Amount
	LevelIncomeEnabled  bool
	GlobalIncomeEnabled bool
	CycleSize           int
}

// UpdateRank updates a rank tier's configuration. New global cycles
// pick up the new cycle size; in-flight cycles keep their own.
func (s *Store) UpdateRank(ctx context.Context, rankID uuid.UUID, params UpdateRankParams) (Rank, error) {
	var rank Rank
	err := s.db.GetContext(ctx, &rank, sqlUpdateRank,
		rankID,
		params.ActivationAmount,
		params.LevelIncomeEnabled,
		params.GlobalIncomeEnabled,
		params.CycleSize)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Rank{}, ErrNotFound
		}
		return Rank{}, fmt.Errorf("failed to update rank: %w", err)
	}
	return rank, nil
}
