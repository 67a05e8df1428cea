package processor

import (
	"context"
	"errors"
	"fmt"

	"uplinepay/internal/config"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"
)

var ErrNotDistributable = errors.New("transaction not distributable")

// Engine computes and records the income fan-out for completed
// activation transactions.
//
// Distribute is idempotent end to end: entry creation, payout
// enqueueing, and matrix enrollment all carry source-derived
// uniqueness, so a resumed run after a partial failure finishes the
// remaining work without duplicating anything already applied.
type Engine struct {
	store  IncomeStore
	matrix Enroller
	events EventPublisher
	plan   config.PlanConfig
	logger *observability.Logger
}

// New creates a new distribution engine
func New(store IncomeStore, matrix Enroller, events EventPublisher, plan config.PlanConfig, logger *observability.Logger) *Engine {
	return &Engine{
		store:  store,
		matrix: matrix,
		events: events,
		plan:   plan,
		logger: logger,
	}
}

// Distribution summarizes one fan-out.
type Distribution struct {
	Entries      []store.IncomeEntry `json:"entries"`
	GlobalShare  money.Amount        `json:"global_share"`
	Remainder    money.Amount        `json:"remainder"`
	LevelsPaid   int                 `json:"levels_paid"`
	GlobalEnroll bool                `json:"global_enroll"`
}

// Distribute runs the referral, level, and global splits for a
// completed activation transaction. Callers invoke it exactly once
// per completion transition; re-invocation (an explicit resume after
// a partial failure) is safe.
func (e *Engine) Distribute(ctx context.Context, tx store.ActivationTransaction, rank store.Rank) (Distribution, error) {
	if tx.Status != store.ActivationStatusCompleted {
		return Distribution{}, ErrNotDistributable
	}
	if tx.DistributedAt != nil {
		// Already fully distributed; nothing to resume.
		return Distribution{}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tx_id", Value: tx.ID.String()},
		observability.Field{Key: "member_id", Value: tx.MemberID.String()},
		observability.Field{Key: "rank_name", Value: rank.Name},
	)

	// Compute every share of the full plan up front so the rounding
	// remainder is a single deterministic number for this transaction,
	// independent of how deep the sponsor chain turns out to be.
	percents := []money.Percent{e.plan.ReferralPercent}
	if rank.LevelIncomeEnabled {
		percents = append(percents, e.plan.LevelPercents...)
	}
	if rank.GlobalIncomeEnabled {
		percents = append(percents, e.plan.GlobalPercent)
	}
	shares, remainder := money.Split(tx.Amount, percents...)

	dist := Distribution{Remainder: remainder}

	// Referral income goes to the direct sponsor. A same-tier top-up
	// pays it as re-topup income instead.
	sponsorID, err := e.store.GetSponsorID(ctx, tx.MemberID)
	if err != nil {
		e.logger.Error(ctx, "failed to look up sponsor", err)
		return Distribution{}, err
	}
	if sponsorID != nil {
		kind := store.IncomeKindReferral
		if tx.TopUp {
			kind = store.IncomeKindReTopup
		}
		entry, created, err := e.createEntryWithPayout(ctx, store.CreateIncomeEntryParams{
			BeneficiaryID:  *sponsorID,
			SourceMemberID: tx.MemberID,
			SourceTxID:     tx.ID,
			Kind:           kind,
			Level:          0,
			Amount:         shares[0],
		})
		if err != nil {
			return Distribution{}, err
		}
		dist.Entries = append(dist.Entries, entry)
		if created && !tx.TopUp {
			if err := e.store.IncrementDirectReferrals(ctx, *sponsorID); err != nil {
				e.logger.Error(ctx, "failed to increment direct referrals", err)
				return Distribution{}, err
			}
		}
	}

	// Level income walks the sponsor chain with a hard depth cap.
	// A missing ancestor truncates the cascade; nothing substitutes
	// for the absent levels.
	if rank.LevelIncomeEnabled {
		ancestorID := sponsorID
		for level := 1; level <= len(e.plan.LevelPercents); level++ {
			if ancestorID == nil {
				break
			}
			entry, created, err := e.createEntryWithPayout(ctx, store.CreateIncomeEntryParams{
				BeneficiaryID:  *ancestorID,
				SourceMemberID: tx.MemberID,
				SourceTxID:     tx.ID,
				Kind:           store.IncomeKindLevel,
				Level:          level,
				Amount:         shares[level],
			})
			if err != nil {
				return Distribution{}, err
			}
			dist.Entries = append(dist.Entries, entry)
			dist.LevelsPaid = level
			if created && !tx.TopUp {
				if err := e.store.IncrementTeamSize(ctx, *ancestorID); err != nil {
					e.logger.Error(ctx, "failed to increment team size", err)
					return Distribution{}, err
				}
			}

			ancestorID, err = e.store.GetSponsorID(ctx, *ancestorID)
			if err != nil {
				e.logger.Error(ctx, "failed to walk sponsor chain", err)
				return Distribution{}, err
			}
		}
	}

	// The global share is not paid to anyone yet; it funds the
	// member's entry into the tier's open cycle and pays out across
	// the cycle's levels on completion. Keyed on the activation so a
	// resumed fan-out cannot enroll the member twice.
	if rank.GlobalIncomeEnabled {
		globalShare := shares[len(shares)-1]
		dist.GlobalShare = globalShare
		if _, err := e.matrix.Enroll(ctx, tx.MemberID, rank, globalShare, fmt.Sprintf("activation:%s", tx.ID)); err != nil {
			e.logger.Error(ctx, "failed to enroll in global cycle", err)
			return Distribution{}, err
		}
		dist.GlobalEnroll = true
	}

	if err := e.store.SetActivationRemainder(ctx, tx.ID, remainder); err != nil {
		e.logger.Error(ctx, "failed to record remainder", err)
		return Distribution{}, err
	}

	// Stamp the transaction so completed fan-outs are visibly final.
	if _, err := e.store.ClaimActivationDistribution(ctx, tx.ID); err != nil {
		e.logger.Error(ctx, "failed to stamp distribution", err)
		return Distribution{}, err
	}

	e.logger.Info(ctx, "income distributed")
	return dist, nil
}

// createEntryWithPayout records one income entry and its payout queue
// item. Both writes are idempotent on the entry's (source, kind,
// level) slot, which is what makes resume safe.
func (e *Engine) createEntryWithPayout(ctx context.Context, params store.CreateIncomeEntryParams) (store.IncomeEntry, bool, error) {
	entry, created, err := e.store.CreateIncomeEntry(ctx, params)
	if err != nil {
		e.logger.Error(ctx, "failed to create income entry", err)
		return store.IncomeEntry{}, false, err
	}

	entryID := entry.ID
	_, _, err = e.store.EnqueuePayout(ctx, store.EnqueuePayoutParams{
		BeneficiaryID: entry.BeneficiaryID,
		Amount:        entry.Amount,
		SourceKey:     fmt.Sprintf("income:%s", entryID),
		IncomeEntryID: &entryID,
	})
	if err != nil {
		e.logger.Error(ctx, "failed to enqueue income payout", err)
		return store.IncomeEntry{}, false, err
	}

	if created {
		e.events.PublishIncomeEntryCreated(ctx, entry)
	}
	return entry, created, nil
}

// Resume re-runs the fan-out for a completed transaction whose
// distribution did not finish, typically after a transient storage
// failure. Exposed to the administrative surface.
func (e *Engine) Resume(ctx context.Context, tx store.ActivationTransaction, rank store.Rank) (Distribution, error) {
	return e.Distribute(ctx, tx, rank)
}
