package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"uplinepay/internal/money"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// CycleStore defines the database operations required by the cycle manager
type CycleStore interface {
	GetRankByName(ctx context.Context, name string) (store.Rank, error)
	GetOrCreateOpenCycle(ctx context.Context, rankName string, capacity int) (store.GlobalCycle, error)
	GetCycleByID(ctx context.Context, cycleID uuid.UUID) (store.GlobalCycle, error)
	EnrollPosition(ctx context.Context, cycleID, memberID uuid.UUID, sourceKey string, contribution money.Amount) (store.ReservedPosition, error)
	GetCyclePositionBySource(ctx context.Context, sourceKey string) (store.CyclePosition, error)
	ListCyclePositions(ctx context.Context, cycleID uuid.UUID) ([]store.CyclePosition, error)
	ClaimCycleCompletion(ctx context.Context, cycleID uuid.UUID) (bool, error)
	EnqueuePayout(ctx context.Context, params store.EnqueuePayoutParams) (store.PayoutQueueItem, bool, error)
}

// EventPublisher emits audit events for cycle state transitions.
// Delivery is best effort; the manager never fails on publish errors.
type EventPublisher interface {
	PublishCycleCompleted(ctx context.Context, cycleID uuid.UUID, rankName string, payouts int)
}
