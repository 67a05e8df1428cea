package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"uplinepay/internal/money"
	matrixProcessor "uplinepay/internal/matrix/processor"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// IncomeStore defines the database operations required by the
// distribution engine
type IncomeStore interface {
	GetSponsorID(ctx context.Context, memberID uuid.UUID) (*uuid.UUID, error)
	CreateIncomeEntry(ctx context.Context, params store.CreateIncomeEntryParams) (store.IncomeEntry, bool, error)
	EnqueuePayout(ctx context.Context, params store.EnqueuePayoutParams) (store.PayoutQueueItem, bool, error)
	SetActivationRemainder(ctx context.Context, txID uuid.UUID, remainder money.Amount) error
	ClaimActivationDistribution(ctx context.Context, txID uuid.UUID) (bool, error)
	IncrementDirectReferrals(ctx context.Context, memberID uuid.UUID) error
	IncrementTeamSize(ctx context.Context, memberID uuid.UUID) error
}

// Enroller places a member into the tier's global cycle.
type Enroller interface {
	Enroll(ctx context.Context, memberID uuid.UUID, rank store.Rank, contribution money.Amount, sourceKey string) (matrixProcessor.Enrollment, error)
}

// EventPublisher emits audit events for income fan-out. Delivery is
// best effort; the engine never fails on publish errors.
type EventPublisher interface {
	PublishIncomeEntryCreated(ctx context.Context, entry store.IncomeEntry)
}
