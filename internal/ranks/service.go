package ranks

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ranks

import (
	"context"
	"errors"

	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

var (
	ErrRankNotFound        = errors.New("rank not found")
	ErrAmountNotIncreasing = errors.New("activation amount must increase with rank index")
	ErrBadCycleSize        = errors.New("cycle size must be a power of two")
)

// RankStore defines the database operations required by Service
type RankStore interface {
	CreateRank(ctx context.Context, params store.CreateRankParams) (store.Rank, error)
	GetRankByName(ctx context.Context, name string) (store.Rank, error)
	ListRanks(ctx context.Context) ([]store.Rank, error)
	UpdateRank(ctx context.Context, rankID uuid.UUID, params store.UpdateRankParams) (store.Rank, error)
}

// Service owns the ordered activation ladder. The catalog changes only
// through the administrative write interface below, which the seeding
// utility also consumes.
type Service struct {
	store  RankStore
	logger *observability.Logger
}

// New creates a new rank catalog service
func New(store RankStore, logger *observability.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get returns the tier with the given name.
func (s *Service) Get(ctx context.Context, name string) (store.Rank, error) {
	rank, err := s.store.GetRankByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Rank{}, ErrRankNotFound
		}
		return store.Rank{}, err
	}
	return rank, nil
}

// List returns the ladder in ascending tier order.
func (s *Service) List(ctx context.Context) ([]store.Rank, error) {
	ranks, err := s.store.ListRanks(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list ranks", err)
		return nil, err
	}
	if ranks == nil {
		ranks = []store.Rank{}
	}
	return ranks, nil
}

// First returns the ladder's entry tier, the only one an inactive
// member may activate.
func (s *Service) First(ctx context.Context) (store.Rank, error) {
	ranks, err := s.List(ctx)
	if err != nil {
		return store.Rank{}, err
	}
	if len(ranks) == 0 {
		return store.Rank{}, ErrRankNotFound
	}
	return ranks[0], nil
}

// CreateRankRequest represents a request to add a tier to the ladder
type CreateRankRequest struct {
	Name                string       `json:"name"`
	RankIndex           int          `json:"rank_index"`
	ActivationAmount    money.Amount `json:"activation_amount"`
	LevelIncomeEnabled  bool         `json:"level_income_enabled"`
	GlobalIncomeEnabled bool         `json:"global_income_enabled"`
	CycleSize           int          `json:"cycle_size"`
}

// Create adds a tier, enforcing the ladder invariants: amounts
// strictly increase with index and cycle sizes are powers of two.
func (s *Service) Create(ctx context.Context, req CreateRankRequest) (store.Rank, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rank_name", Value: req.Name},
		observability.Field{Key: "rank_index", Value: req.RankIndex},
	)

	if !isPowerOfTwo(req.CycleSize) {
		return store.Rank{}, ErrBadCycleSize
	}

	existing, err := s.List(ctx)
	if err != nil {
		return store.Rank{}, err
	}
	for _, r := range existing {
		if r.RankIndex < req.RankIndex && r.ActivationAmount >= req.ActivationAmount {
			return store.Rank{}, ErrAmountNotIncreasing
		}
		if r.RankIndex > req.RankIndex && r.ActivationAmount <= req.ActivationAmount {
			return store.Rank{}, ErrAmountNotIncreasing
		}
	}

	rank, err := s.store.CreateRank(ctx, store.CreateRankParams{
		Name:                req.Name,
		RankIndex:           req.RankIndex,
		ActivationAmount:    req.ActivationAmount,
		LevelIncomeEnabled:  req.LevelIncomeEnabled,
		GlobalIncomeEnabled: req.GlobalIncomeEnabled,
		CycleSize:           req.CycleSize,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create rank", err)
		return store.Rank{}, err
	}

	s.logger.Info(ctx, "rank created")
	return rank, nil
}

// UpdateRankRequest represents an administrative tier edit
type UpdateRankRequest struct {
	ActivationAmount    money.Amount `json:"activation_amount"`
	LevelIncomeEnabled  bool         `json:"level_income_enabled"`
	GlobalIncomeEnabled bool         `json:"global_income_enabled"`
	CycleSize           int          `json:"cycle_size"`
}

// Update edits a tier's configuration. Cycles already in flight keep
// the capacity they were created with.
func (s *Service) Update(ctx context.Context, rankID uuid.UUID, req UpdateRankRequest) (store.Rank, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "rank_id", Value: rankID.String()})

	if !isPowerOfTwo(req.CycleSize) {
		return store.Rank{}, ErrBadCycleSize
	}

	rank, err := s.store.UpdateRank(ctx, rankID, store.UpdateRankParams{
		ActivationAmount:    req.ActivationAmount,
		LevelIncomeEnabled:  req.LevelIncomeEnabled,
		GlobalIncomeEnabled: req.GlobalIncomeEnabled,
		CycleSize:           req.CycleSize,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Rank{}, ErrRankNotFound
		}
		s.logger.Error(ctx, "failed to update rank", err)
		return store.Rank{}, err
	}

	s.logger.Info(ctx, "rank updated")
	return rank, nil
}

func isPowerOfTwo(n int) bool {
	return n > 1 && n&(n-1) == 0
}
