package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	incomeProcessor "uplinepay/internal/income/processor"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// ActivationStore defines the database operations required by the
// activation processor
type ActivationStore interface {
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (store.Member, error)
	GetRankByName(ctx context.Context, name string) (store.Rank, error)
	ListRanks(ctx context.Context) ([]store.Rank, error)
	CreatePendingActivation(ctx context.Context, params store.CreateActivationParams) (store.ActivationTransaction, error)
	CreateCompletedActivationWithDebit(ctx context.Context, params store.CreateActivationParams) (store.ActivationTransaction, error)
	GetActivationByID(ctx context.Context, txID uuid.UUID) (store.ActivationTransaction, error)
	GetActivationsByMember(ctx context.Context, memberID uuid.UUID) ([]store.ActivationTransaction, error)
	TransitionActivationStatus(ctx context.Context, txID uuid.UUID, from, to string) (store.ActivationTransaction, error)
	SetMemberRank(ctx context.Context, memberID uuid.UUID, rankName string) error
}

// Distributor runs the income fan-out for a completed transaction.
// Resume re-runs an interrupted fan-out with the same idempotent
// semantics.
type Distributor interface {
	Distribute(ctx context.Context, tx store.ActivationTransaction, rank store.Rank) (incomeProcessor.Distribution, error)
	Resume(ctx context.Context, tx store.ActivationTransaction, rank store.Rank) (incomeProcessor.Distribution, error)
}

// EventPublisher emits audit events for transaction state
// transitions. Delivery is best effort.
type EventPublisher interface {
	PublishActivationCompleted(ctx context.Context, tx store.ActivationTransaction)
}
