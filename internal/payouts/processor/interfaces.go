package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// PayoutStore defines the database operations required by the payout
// processor
type PayoutStore interface {
	ListProcessablePayouts(ctx context.Context, limit int) ([]store.PayoutQueueItem, error)
	ApplyPayout(ctx context.Context, item store.PayoutQueueItem) (bool, error)
	MarkPayoutFailed(ctx context.Context, itemID uuid.UUID) error
	MarkIncomeEntryCompleted(ctx context.Context, entryID uuid.UUID) error
}

// EventPublisher emits audit events for applied payouts. Delivery is
// best effort.
type EventPublisher interface {
	PublishPayoutApplied(ctx context.Context, item store.PayoutQueueItem)
}
