package processor

import (
	"context"
	"errors"

	"uplinepay/internal/config"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrBelowMinimum        = errors.New("amount below withdrawal minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidMethod       = errors.New("invalid withdrawal method")
	ErrNotPending          = errors.New("withdrawal not pending")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
)

// WithdrawalProcessor handles withdrawal requests and their
// resolution.
type WithdrawalProcessor struct {
	store  WithdrawalStore
	events EventPublisher
	cfg    config.WithdrawConfig
	logger *observability.Logger
}

// New creates a new WithdrawalProcessor
func New(store WithdrawalStore, events EventPublisher, cfg config.WithdrawConfig, logger *observability.Logger) *WithdrawalProcessor {
	return &WithdrawalProcessor{
		store:  store,
		events: events,
		cfg:    cfg,
		logger: logger,
	}
}

// Request debits the gross amount from the member's balance and
// records a pending withdrawal. The deduction for the chosen method
// is computed up front so the member sees the net amount immediately.
func (p *WithdrawalProcessor) Request(ctx context.Context, memberID uuid.UUID, amount money.Amount, method string) (store.Withdrawal, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "member_id", Value: memberID.String()},
		observability.Field{Key: "method", Value: method},
		observability.Field{Key: "amount", Value: amount.String()},
	)

	pct, ok := p.cfg.DeductionPercents[method]
	if !ok {
		return store.Withdrawal{}, ErrInvalidMethod
	}
	if amount < p.cfg.Minimum {
		return store.Withdrawal{}, ErrBelowMinimum
	}

	deduction := amount.Percent(pct)
	w, err := p.store.CreateWithdrawalWithDebit(ctx, store.CreateWithdrawalParams{
		MemberID:  memberID,
		Amount:    amount,
		Method:    method,
		Deduction: deduction,
		NetAmount: amount - deduction,
	})
	if err != nil {
		if errors.Is(err, store.ErrBalanceTooLow) {
			return store.Withdrawal{}, ErrInsufficientBalance
		}
		p.logger.Error(ctx, "failed to create withdrawal", err)
		return store.Withdrawal{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "withdrawal_id", Value: w.ID.String()},
		observability.Field{Key: "net_amount", Value: w.NetAmount.String()},
	)
	p.logger.Info(ctx, "withdrawal requested")
	return w, nil
}

// Approve marks a pending withdrawal completed. The funds were
// debited at request time, so nothing moves here.
func (p *WithdrawalProcessor) Approve(ctx context.Context, withdrawalID uuid.UUID) (store.Withdrawal, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "withdrawal_id", Value: withdrawalID.String()})

	w, err := p.store.CompleteWithdrawal(ctx, withdrawalID)
	if err != nil {
		if errors.Is(err, store.ErrWithdrawalNotPending) {
			return store.Withdrawal{}, ErrNotPending
		}
		p.logger.Error(ctx, "failed to complete withdrawal", err)
		return store.Withdrawal{}, err
	}

	p.events.PublishWithdrawalResolved(ctx, w)
	p.logger.Info(ctx, "withdrawal completed")
	return w, nil
}

// Reject resolves a pending withdrawal as rejected and restores the
// full gross amount to the member's balance.
func (p *WithdrawalProcessor) Reject(ctx context.Context, withdrawalID uuid.UUID) (store.Withdrawal, error) {
	return p.reverse(ctx, withdrawalID, store.WithdrawalStatusRejected)
}

// Cancel resolves a pending withdrawal as cancelled at the member's
// request and restores the full gross amount.
func (p *WithdrawalProcessor) Cancel(ctx context.Context, memberID, withdrawalID uuid.UUID) (store.Withdrawal, error) {
	w, err := p.store.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Withdrawal{}, ErrWithdrawalNotFound
		}
		return store.Withdrawal{}, err
	}
	if w.MemberID != memberID {
		return store.Withdrawal{}, ErrWithdrawalNotFound
	}
	return p.reverse(ctx, withdrawalID, store.WithdrawalStatusCancelled)
}

// reverse runs the resolve-and-restore transaction. The conditional
// status transition inside the store guarantees the restore happens
// at most once even under concurrent reject and cancel calls.
func (p *WithdrawalProcessor) reverse(ctx context.Context, withdrawalID uuid.UUID, status string) (store.Withdrawal, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "withdrawal_id", Value: withdrawalID.String()},
		observability.Field{Key: "resolution", Value: status},
	)

	w, err := p.store.ReverseWithdrawal(ctx, withdrawalID, status)
	if err != nil {
		if errors.Is(err, store.ErrWithdrawalNotPending) {
			return store.Withdrawal{}, ErrNotPending
		}
		p.logger.Error(ctx, "failed to reverse withdrawal", err)
		return store.Withdrawal{}, err
	}

	p.events.PublishWithdrawalResolved(ctx, w)
	p.logger.Info(ctx, "withdrawal reversed and balance restored")
	return w, nil
}

// Get retrieves one withdrawal.
func (p *WithdrawalProcessor) Get(ctx context.Context, withdrawalID uuid.UUID) (store.Withdrawal, error) {
	w, err := p.store.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Withdrawal{}, ErrWithdrawalNotFound
		}
		return store.Withdrawal{}, err
	}
	return w, nil
}

// History retrieves a member's withdrawals, newest first.
func (p *WithdrawalProcessor) History(ctx context.Context, memberID uuid.UUID) ([]store.Withdrawal, error) {
	ws, err := p.store.GetWithdrawalsByMember(ctx, memberID)
	if err != nil {
		p.logger.Error(ctx, "failed to get withdrawal history", err)
		return nil, err
	}
	if ws == nil {
		ws = []store.Withdrawal{}
	}
	return ws, nil
}

// ListPending retrieves all pending withdrawals for admin review.
func (p *WithdrawalProcessor) ListPending(ctx context.Context) ([]store.Withdrawal, error) {
	ws, err := p.store.ListPendingWithdrawals(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list pending withdrawals", err)
		return nil, err
	}
	if ws == nil {
		ws = []store.Withdrawal{}
	}
	return ws, nil
}
