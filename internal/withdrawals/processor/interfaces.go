package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// WithdrawalStore defines the database operations required by the
// withdrawal processor
type WithdrawalStore interface {
	CreateWithdrawalWithDebit(ctx context.Context, params store.CreateWithdrawalParams) (store.Withdrawal, error)
	GetWithdrawalByID(ctx context.Context, withdrawalID uuid.UUID) (store.Withdrawal, error)
	GetWithdrawalsByMember(ctx context.Context, memberID uuid.UUID) ([]store.Withdrawal, error)
	ListPendingWithdrawals(ctx context.Context) ([]store.Withdrawal, error)
	CompleteWithdrawal(ctx context.Context, withdrawalID uuid.UUID) (store.Withdrawal, error)
	ReverseWithdrawal(ctx context.Context, withdrawalID uuid.UUID, status string) (store.Withdrawal, error)
}

// EventPublisher emits audit events for resolved withdrawals.
// Delivery is best effort.
type EventPublisher interface {
	PublishWithdrawalResolved(ctx context.Context, w store.Withdrawal)
}
