package events

import (
	"context"
	"time"

	"uplinepay/internal/clients/kafka"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// Publisher publishes domain audit events to Kafka. Ledger state is
// the source of truth; delivery failures are logged, never bubbled up
// into the money path.
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

func (p *Publisher) publish(ctx context.Context, event kafka.EventMessage) {
	if err := p.kafkaProducer.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish audit event", err)
	}
}

// PublishActivationCompleted publishes an activation.completed event
func (p *Publisher) PublishActivationCompleted(ctx context.Context, tx store.ActivationTransaction) {
	p.publish(ctx, kafka.EventMessage{
		ID:       uuid.New().String(),
		Type:     "activation.completed",
		MemberID: tx.MemberID.String(),
		Data: map[string]interface{}{
			"transaction_id": tx.ID.String(),
			"rank_name":      tx.RankName,
			"amount":         tx.Amount,
			"payment_method": tx.PaymentMethod,
			"top_up":         tx.TopUp,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishIncomeEntryCreated publishes an income.entry_created event
func (p *Publisher) PublishIncomeEntryCreated(ctx context.Context, entry store.IncomeEntry) {
	p.publish(ctx, kafka.EventMessage{
		ID:       uuid.New().String(),
		Type:     "income.entry_created",
		MemberID: entry.BeneficiaryID.String(),
		Data: map[string]interface{}{
			"entry_id":     entry.ID.String(),
			"source_tx_id": entry.SourceTxID.String(),
			"kind":         entry.Kind,
			"level":        entry.Level,
			"amount":       entry.Amount,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishCycleCompleted publishes a cycle.completed event
func (p *Publisher) PublishCycleCompleted(ctx context.Context, cycleID uuid.UUID, rankName string, payouts int) {
	p.publish(ctx, kafka.EventMessage{
		ID:       uuid.New().String(),
		Type:     "cycle.completed",
		MemberID: cycleID.String(),
		Data: map[string]interface{}{
			"cycle_id":  cycleID.String(),
			"rank_name": rankName,
			"payouts":   payouts,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishPayoutApplied publishes a payout.applied event
func (p *Publisher) PublishPayoutApplied(ctx context.Context, item store.PayoutQueueItem) {
	p.publish(ctx, kafka.EventMessage{
		ID:       uuid.New().String(),
		Type:     "payout.applied",
		MemberID: item.BeneficiaryID.String(),
		Data: map[string]interface{}{
			"payout_id":  item.ID.String(),
			"source_key": item.SourceKey,
			"amount":     item.Amount,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishWithdrawalResolved publishes a withdrawal.resolved event
func (p *Publisher) PublishWithdrawalResolved(ctx context.Context, w store.Withdrawal) {
	p.publish(ctx, kafka.EventMessage{
		ID:       uuid.New().String(),
		Type:     "withdrawal.resolved",
		MemberID: w.MemberID.String(),
		Data: map[string]interface{}{
			"withdrawal_id": w.ID.String(),
			"method":        w.Method,
			"status":        w.Status,
			"amount":        w.Amount,
			"net_amount":    w.NetAmount,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
