package processor

import (
	"context"
	"errors"
	"regexp"

	incomeProcessor "uplinepay/internal/income/processor"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound              = errors.New("member not found")
	ErrInvalidRank                 = errors.New("invalid rank")
	ErrSequenceViolation           = errors.New("rank sequence violation")
	ErrDuplicatePendingTransaction = errors.New("duplicate pending transaction")
	ErrDuplicateProof              = errors.New("duplicate payment proof")
	ErrInsufficientBalance         = errors.New("insufficient balance")
	ErrInvalidPaymentDetails       = errors.New("invalid payment details")
	ErrTransactionNotPending       = errors.New("transaction not pending")
	ErrTransactionNotFound         = errors.New("transaction not found")
)

// txHashPattern matches a 32-byte hex transaction hash.
var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// PaymentDetails is the tagged payment variant. Exactly the fields of
// the chosen method are read; everything else must be empty.
type PaymentDetails struct {
	Method string `json:"method"`

	// TxHash is required for on-chain transfers.
	TxHash string `json:"tx_hash,omitempty"`
	// Reference is required for peer-to-peer payments.
	Reference string `json:"reference,omitempty"`
	// Amount is required for internal balance conversions and must
	// equal the tier's activation amount exactly.
	Amount money.Amount `json:"amount,omitempty"`
}

// ActivationProcessor validates and records activation and top-up
// requests.
type ActivationProcessor struct {
	store       ActivationStore
	distributor Distributor
	events      EventPublisher
	logger      *observability.Logger
}

// New creates a new ActivationProcessor
func New(store ActivationStore, distributor Distributor, events EventPublisher, logger *observability.Logger) *ActivationProcessor {
	return &ActivationProcessor{
		store:       store,
		distributor: distributor,
		events:      events,
		logger:      logger,
	}
}

// Activate processes one activation or top-up request. No side effect
// happens until every precondition holds; the pending-transaction
// uniqueness and the balance debit are enforced by the store's atomic
// primitives rather than by reads here.
func (p *ActivationProcessor) Activate(ctx context.Context, memberID uuid.UUID, targetRank string, details PaymentDetails) (store.ActivationTransaction, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "member_id", Value: memberID.String()},
		observability.Field{Key: "target_rank", Value: targetRank},
		observability.Field{Key: "payment_method", Value: details.Method},
	)

	rank, err := p.store.GetRankByName(ctx, targetRank)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ActivationTransaction{}, ErrInvalidRank
		}
		p.logger.Error(ctx, "failed to get rank", err)
		return store.ActivationTransaction{}, err
	}

	member, err := p.store.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ActivationTransaction{}, ErrMemberNotFound
		}
		p.logger.Error(ctx, "failed to get member", err)
		return store.ActivationTransaction{}, err
	}

	topUp, err := p.checkSequence(ctx, member, rank)
	if err != nil {
		return store.ActivationTransaction{}, err
	}

	params := store.CreateActivationParams{
		MemberID:      memberID,
		RankName:      rank.Name,
		Amount:        rank.ActivationAmount,
		PaymentMethod: details.Method,
		TopUp:         topUp,
	}

	switch details.Method {
	case store.PaymentMethodOnChain:
		if !txHashPattern.MatchString(details.TxHash) {
			return store.ActivationTransaction{}, ErrInvalidPaymentDetails
		}
		params.ProofRef = &details.TxHash
		return p.createPending(ctx, params)

	case store.PaymentMethodP2P:
		if details.Reference == "" {
			return store.ActivationTransaction{}, ErrInvalidPaymentDetails
		}
		params.ProofRef = &details.Reference
		return p.createPending(ctx, params)

	case store.PaymentMethodInternal:
		if details.Amount != rank.ActivationAmount {
			return store.ActivationTransaction{}, ErrInvalidPaymentDetails
		}
		return p.createFromBalance(ctx, params, rank)

	default:
		return store.ActivationTransaction{}, ErrInvalidPaymentDetails
	}
}

// checkSequence enforces the ladder rules: inactive members start at
// the first tier, active members move one tier up or refresh their
// current tier. It reports whether the request is a same-tier top-up.
func (p *ActivationProcessor) checkSequence(ctx context.Context, member store.Member, target store.Rank) (bool, error) {
	if member.CurrentRank == store.RankInactive {
		ranks, err := p.store.ListRanks(ctx)
		if err != nil {
			p.logger.Error(ctx, "failed to list ranks", err)
			return false, err
		}
		if len(ranks) == 0 || ranks[0].Name != target.Name {
			return false, ErrSequenceViolation
		}
		return false, nil
	}

	current, err := p.store.GetRankByName(ctx, member.CurrentRank)
	if err != nil {
		p.logger.Error(ctx, "failed to get member's current rank", err)
		return false, err
	}
	switch target.RankIndex {
	case current.RankIndex:
		return true, nil
	case current.RankIndex + 1:
		return false, nil
	default:
		return false, ErrSequenceViolation
	}
}

// createPending records a pending transaction awaiting external
// confirmation. Proof uniqueness and the one-pending-per-member rule
// are both decided inside the insert.
func (p *ActivationProcessor) createPending(ctx context.Context, params store.CreateActivationParams) (store.ActivationTransaction, error) {
	tx, err := p.store.CreatePendingActivation(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPendingActivationExists):
			return store.ActivationTransaction{}, ErrDuplicatePendingTransaction
		case errors.Is(err, store.ErrProofAlreadyUsed):
			return store.ActivationTransaction{}, ErrDuplicateProof
		}
		p.logger.Error(ctx, "failed to create pending activation", err)
		return store.ActivationTransaction{}, err
	}

	p.logger.Info(ctx, "activation recorded pending confirmation")
	return tx, nil
}

// createFromBalance debits the tier amount from the member's balance
// and completes the transaction synchronously, triggering income
// distribution before returning.
func (p *ActivationProcessor) createFromBalance(ctx context.Context, params store.CreateActivationParams, rank store.Rank) (store.ActivationTransaction, error) {
	tx, err := p.store.CreateCompletedActivationWithDebit(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBalanceTooLow):
			return store.ActivationTransaction{}, ErrInsufficientBalance
		case errors.Is(err, store.ErrPendingActivationExists):
			return store.ActivationTransaction{}, ErrDuplicatePendingTransaction
		}
		p.logger.Error(ctx, "failed to create balance activation", err)
		return store.ActivationTransaction{}, err
	}

	if err := p.finishCompletion(ctx, tx, rank); err != nil {
		return store.ActivationTransaction{}, err
	}
	return tx, nil
}

// Confirm moves a pending on-chain or p2p transaction to completed
// after the external payment checks out, and runs the income fan-out.
// The conditional transition resolves confirmation races to a single
// winner, so distribution triggers at most once.
func (p *ActivationProcessor) Confirm(ctx context.Context, txID uuid.UUID) (store.ActivationTransaction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tx_id", Value: txID.String()})

	tx, err := p.store.TransitionActivationStatus(ctx, txID, store.ActivationStatusPending, store.ActivationStatusCompleted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ActivationTransaction{}, ErrTransactionNotPending
		}
		p.logger.Error(ctx, "failed to complete activation", err)
		return store.ActivationTransaction{}, err
	}

	rank, err := p.store.GetRankByName(ctx, tx.RankName)
	if err != nil {
		p.logger.Error(ctx, "failed to get rank for completion", err)
		return store.ActivationTransaction{}, err
	}

	if err := p.finishCompletion(ctx, tx, rank); err != nil {
		return store.ActivationTransaction{}, err
	}
	return tx, nil
}

// Reject marks a pending transaction rejected. Nothing was debited
// for on-chain and p2p payments, so no balance moves.
func (p *ActivationProcessor) Reject(ctx context.Context, txID uuid.UUID) (store.ActivationTransaction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tx_id", Value: txID.String()})

	tx, err := p.store.TransitionActivationStatus(ctx, txID, store.ActivationStatusPending, store.ActivationStatusRejected)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ActivationTransaction{}, ErrTransactionNotPending
		}
		p.logger.Error(ctx, "failed to reject activation", err)
		return store.ActivationTransaction{}, err
	}

	p.logger.Info(ctx, "activation rejected")
	return tx, nil
}

// finishCompletion applies the post-completion effects: the member's
// rank moves, the fan-out runs, and the completion event goes out.
func (p *ActivationProcessor) finishCompletion(ctx context.Context, tx store.ActivationTransaction, rank store.Rank) error {
	if err := p.store.SetMemberRank(ctx, tx.MemberID, rank.Name); err != nil {
		p.logger.Error(ctx, "failed to set member rank", err)
		return err
	}

	if _, err := p.distributor.Distribute(ctx, tx, rank); err != nil {
		p.logger.Error(ctx, "failed to distribute income", err)
		return err
	}

	p.events.PublishActivationCompleted(ctx, tx)
	p.logger.Info(ctx, "activation completed")
	return nil
}

// Redistribute re-runs the income fan-out for a transaction whose
// earlier fan-out died partway. Every step of the fan-out is keyed on
// the transaction, so only the work the interrupted run left behind
// is applied; a fully distributed transaction is a no-op.
func (p *ActivationProcessor) Redistribute(ctx context.Context, txID uuid.UUID) (incomeProcessor.Distribution, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tx_id", Value: txID.String()})

	tx, err := p.store.GetActivationByID(ctx, txID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return incomeProcessor.Distribution{}, ErrTransactionNotFound
		}
		p.logger.Error(ctx, "failed to get activation", err)
		return incomeProcessor.Distribution{}, err
	}

	rank, err := p.store.GetRankByName(ctx, tx.RankName)
	if err != nil {
		p.logger.Error(ctx, "failed to get rank for redistribution", err)
		return incomeProcessor.Distribution{}, err
	}

	dist, err := p.distributor.Resume(ctx, tx, rank)
	if err != nil {
		return incomeProcessor.Distribution{}, err
	}

	p.logger.Info(ctx, "income fan-out resumed")
	return dist, nil
}

// GetTransaction retrieves one activation transaction.
func (p *ActivationProcessor) GetTransaction(ctx context.Context, txID uuid.UUID) (store.ActivationTransaction, error) {
	tx, err := p.store.GetActivationByID(ctx, txID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ActivationTransaction{}, ErrTransactionNotPending
		}
		return store.ActivationTransaction{}, err
	}
	return tx, nil
}

// History retrieves a member's activation transactions, newest first.
func (p *ActivationProcessor) History(ctx context.Context, memberID uuid.UUID) ([]store.ActivationTransaction, error) {
	txs, err := p.store.GetActivationsByMember(ctx, memberID)
	if err != nil {
		p.logger.Error(ctx, "failed to get activation history", err)
		return nil, err
	}
	if txs == nil {
		txs = []store.ActivationTransaction{}
	}
	return txs, nil
}
