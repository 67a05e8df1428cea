package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCycleNotFound = errors.New("cycle not found")
	ErrEnrollFailed  = errors.New("failed to enroll in global cycle")
)

// enrollRetries bounds the race of landing in a cycle that fills up
// between lookup and reservation.
const enrollRetries = 3

// enrollBackoff is the base delay between retries; each retry doubles it.
const enrollBackoff = 20 * time.Millisecond

// CycleManager assigns matrix positions, detects cycle completion and
// queues the global payouts.
type CycleManager struct {
	store    CycleStore
	events   EventPublisher
	reenroll bool
	logger   *observability.Logger
}

// New creates a new CycleManager. reenrollOnComplete re-enters
// completed-cycle members into a fresh cycle; it defaults off and is
// a deliberate behavior switch, not a tuning knob.
func New(store CycleStore, events EventPublisher, reenrollOnComplete bool, logger *observability.Logger) *CycleManager {
	return &CycleManager{
		store:    store,
		events:   events,
		reenroll: reenrollOnComplete,
		logger:   logger,
	}
}

// Enrollment describes where a member landed in the matrix.
type Enrollment struct {
	CycleID        uuid.UUID `json:"cycle_id"`
	Position       int       `json:"position"`
	Level          int       `json:"level"`
	CycleCompleted bool      `json:"cycle_completed"`
}

// Enroll places the member into the tier's current open cycle,
// folding contribution into the cycle pool. sourceKey identifies the
// cause of the enrollment and makes the call replay-safe: enrolling
// the same source again returns the position it already holds instead
// of reserving a second one. When the assigned position is the last
// one, the cycle completes and its payouts are queued before Enroll
// returns.
func (m *CycleManager) Enroll(ctx context.Context, memberID uuid.UUID, rank store.Rank, contribution money.Amount, sourceKey string) (Enrollment, error) {
	return m.enroll(ctx, memberID, rank, contribution, sourceKey, m.reenroll)
}

func (m *CycleManager) enroll(ctx context.Context, memberID uuid.UUID, rank store.Rank, contribution money.Amount, sourceKey string, allowReenroll bool) (Enrollment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "member_id", Value: memberID.String()},
		observability.Field{Key: "rank_name", Value: rank.Name},
	)

	// A source that already holds a position is a replay: return the
	// existing assignment and finish any completion work the earlier
	// attempt left behind.
	existing, err := m.store.GetCyclePositionBySource(ctx, sourceKey)
	if err == nil {
		return m.replayEnrollment(ctx, existing, allowReenroll)
	}
	if !errors.Is(err, store.ErrNotFound) {
		m.logger.Error(ctx, "failed to check enrollment source", err)
		return Enrollment{}, err
	}

	for attempt := 0; attempt < enrollRetries; attempt++ {
		cycle, err := m.store.GetOrCreateOpenCycle(ctx, rank.Name, rank.CycleSize)
		if err != nil {
			m.logger.Error(ctx, "failed to get open cycle", err)
			return Enrollment{}, err
		}

		reserved, err := m.store.EnrollPosition(ctx, cycle.ID, memberID, sourceKey, contribution)
		if errors.Is(err, store.ErrCycleFull) {
			// Someone took the last slot between lookup and
			// reservation; the full cycle completes through its last
			// occupant. Back off briefly, then retry against the next
			// one.
			select {
			case <-ctx.Done():
				return Enrollment{}, ctx.Err()
			case <-time.After(enrollBackoff << attempt):
			}
			continue
		}
		if errors.Is(err, store.ErrAlreadyEnrolled) {
			// Lost a race against a concurrent replay of the same
			// source; whoever inserted the row owns the side effects.
			existing, err := m.store.GetCyclePositionBySource(ctx, sourceKey)
			if err != nil {
				m.logger.Error(ctx, "failed to load winning enrollment", err)
				return Enrollment{}, err
			}
			return Enrollment{
				CycleID:  existing.CycleID,
				Position: existing.Position,
				Level:    Level(existing.Position),
			}, nil
		}
		if err != nil {
			m.logger.Error(ctx, "failed to reserve position", err)
			return Enrollment{}, err
		}

		enrollment := Enrollment{
			CycleID:  cycle.ID,
			Position: reserved.Position,
			Level:    Level(reserved.Position),
		}

		if reserved.Position == reserved.Capacity {
			if err := m.completeCycle(ctx, cycle.ID, allowReenroll); err != nil {
				return Enrollment{}, err
			}
			enrollment.CycleCompleted = true
		}

		return enrollment, nil
	}

	return Enrollment{}, ErrEnrollFailed
}

// replayEnrollment reconstructs the Enrollment for a source that is
// already placed. If the earlier attempt reserved the closing position
// but failed before its completion side effects landed, they are
// re-driven here.
func (m *CycleManager) replayEnrollment(ctx context.Context, pos store.CyclePosition, allowReenroll bool) (Enrollment, error) {
	cycle, err := m.store.GetCycleByID(ctx, pos.CycleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Enrollment{}, ErrCycleNotFound
		}
		m.logger.Error(ctx, "failed to load enrolled cycle", err)
		return Enrollment{}, err
	}

	enrollment := Enrollment{
		CycleID:  pos.CycleID,
		Position: pos.Position,
		Level:    Level(pos.Position),
	}

	if pos.Position == cycle.Capacity {
		if err := m.completeCycle(ctx, cycle.ID, allowReenroll); err != nil {
			return Enrollment{}, err
		}
		enrollment.CycleCompleted = true
	}

	m.logger.Info(ctx, "enrollment replayed for existing source")
	return enrollment, nil
}

// completeCycle creates one payout item per occupied slot, each worth
// an equal per-level share of the pool, then marks the cycle complete.
// The payouts are enqueued before the completion claim: each item is
// source-keyed, so a resumed call after a partial enqueue re-runs them
// as no-ops, while the claim keeps the event and re-enrollment
// at-most-once.
func (m *CycleManager) completeCycle(ctx context.Context, cycleID uuid.UUID, allowReenroll bool) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "cycle_id", Value: cycleID.String()})

	cycle, err := m.store.GetCycleByID(ctx, cycleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCycleNotFound
		}
		m.logger.Error(ctx, "failed to load completed cycle", err)
		return err
	}
	if cycle.Status == store.CycleStatusComplete {
		// Another caller already finished the cycle.
		return nil
	}

	levels := CycleLevels(cycle.Capacity)
	perLevel, remainder := cycle.Pool.Div(int64(levels))
	if !remainder.IsZero() {
		// The pool remainder stays with the platform, same policy as
		// income-split rounding.
		m.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "pool_remainder", Value: remainder.String()},
		), "cycle pool remainder retained")
	}

	positions, err := m.store.ListCyclePositions(ctx, cycleID)
	if err != nil {
		m.logger.Error(ctx, "failed to list cycle positions", err)
		return err
	}

	for _, pos := range positions {
		_, _, err := m.store.EnqueuePayout(ctx, store.EnqueuePayoutParams{
			BeneficiaryID: pos.MemberID,
			Amount:        perLevel,
			SourceKey:     fmt.Sprintf("cycle:%s:pos:%d", cycleID, pos.Position),
			CycleID:       &cycleID,
		})
		if err != nil {
			m.logger.Error(ctx, "failed to enqueue cycle payout", err)
			return err
		}
	}

	claimed, err := m.store.ClaimCycleCompletion(ctx, cycleID)
	if err != nil {
		m.logger.Error(ctx, "failed to claim cycle completion", err)
		return err
	}
	if !claimed {
		// A concurrent caller won the claim; the enqueues above were
		// idempotent no-ops and the winner publishes the event.
		return nil
	}

	m.events.PublishCycleCompleted(ctx, cycleID, cycle.RankName, len(positions))
	m.logger.Info(ctx, "cycle completed and payouts queued")

	if allowReenroll {
		if err := m.reenrollOccupants(ctx, cycle, positions); err != nil {
			return err
		}
	}

	return nil
}

// reenrollOccupants places each completed-cycle member at the base of
// a fresh cycle. Re-enrollments carry no pool contribution and do not
// cascade: a fresh cycle they happen to fill completes, but its
// occupants are not re-enrolled again.
func (m *CycleManager) reenrollOccupants(ctx context.Context, cycle store.GlobalCycle, positions []store.CyclePosition) error {
	rank, err := m.store.GetRankByName(ctx, cycle.RankName)
	if err != nil {
		m.logger.Error(ctx, "failed to load rank for re-enrollment", err)
		return err
	}

	// The fresh cycle uses the tier's current configured size, which
	// may differ from the completed cycle's capacity.
	for _, pos := range positions {
		sourceKey := fmt.Sprintf("reenroll:%s:pos:%d", cycle.ID, pos.Position)
		if _, err := m.enroll(ctx, pos.MemberID, rank, 0, sourceKey, false); err != nil {
			m.logger.Error(ctx, "failed to re-enroll member", err)
			return err
		}
	}
	return nil
}
