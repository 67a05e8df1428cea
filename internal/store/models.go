package store

import (
	"time"

	"uplinepay/internal/money"

	"github.com/google/uuid"
)

// Member is a participant in the compensation plan. The sponsor link
// points strictly upward; the chain never cycles.
type Member struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	SponsorID *uuid.UUID `db:"sponsor_id" json:"sponsor_id,omitempty"`

	CurrentRank string `db:"current_rank" json:"current_rank"`

	AvailableBalance money.Amount `db:"available_balance" json:"available_balance"`
	PendingBalance   money.Amount `db:"pending_balance" json:"pending_balance"`
	TotalEarnings    money.Amount `db:"total_earnings" json:"total_earnings"`

	DirectReferrals int `db:"direct_referrals" json:"direct_referrals"`
	TeamSize        int `db:"team_size" json:"team_size"`

	ActivatedAt *time.Time `db:"activated_at" json:"activated_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Rank is one tier of the activation ladder.
type Rank struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	RankIndex int       `db:"rank_index" json:"rank_index"`

	ActivationAmount money.Amount `db:"activation_amount" json:"activation_amount"`

	LevelIncomeEnabled  bool `db:"level_income_enabled" json:"level_income_enabled"`
	GlobalIncomeEnabled bool `db:"global_income_enabled" json:"global_income_enabled"`

	// CycleSize is the capacity of global cycles opened for this tier.
	// Always a power of two. In-flight cycles keep the size they were
	// created with.
	CycleSize int `db:"cycle_size" json:"cycle_size"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ActivationTransaction records one activation or top-up attempt.
type ActivationTransaction struct {
	ID       uuid.UUID `db:"id" json:"id"`
	MemberID uuid.UUID `db:"member_id" json:"member_id"`

	RankName      string       `db:"rank_name" json:"rank_name"`
	Amount        money.Amount `db:"amount" json:"amount"`
	PaymentMethod string       `db:"payment_method" json:"payment_method"`
	// ProofRef is the on-chain tx hash or p2p reference token,
	// globally unique across all transactions. Empty for internal
	// balance conversions.
	ProofRef *string `db:"proof_ref" json:"proof_ref,omitempty"`

	// TopUp marks a same-tier re-activation.
	TopUp bool `db:"top_up" json:"top_up"`

	Status string `db:"status" json:"status"`

	// RemainderAmount is the rounding remainder the platform retained
	// from this transaction's income splits. Set at distribution time.
	RemainderAmount money.Amount `db:"remainder_amount" json:"remainder_amount"`

	DistributedAt *time.Time `db:"distributed_at" json:"distributed_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// IncomeEntry is one computed commission. Append-only; the only
// mutation after creation is the pending -> completed status move.
type IncomeEntry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	BeneficiaryID  uuid.UUID `db:"beneficiary_id" json:"beneficiary_id"`
	SourceMemberID uuid.UUID `db:"source_member_id" json:"source_member_id"`
	SourceTxID     uuid.UUID `db:"source_tx_id" json:"source_tx_id"`

	Kind string `db:"kind" json:"kind"`
	// Level is the 1-indexed depth for level/global kinds, 0 otherwise.
	Level  int          `db:"level" json:"level"`
	Amount money.Amount `db:"amount" json:"amount"`

	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// GlobalCycle is one fixed-capacity cohort of a tier's global matrix.
type GlobalCycle struct {
	ID       uuid.UUID `db:"id" json:"id"`
	RankName string    `db:"rank_name" json:"rank_name"`

	// Capacity is fixed at creation and never changes, even if the
	// tier's configured cycle size does.
	Capacity    int `db:"capacity" json:"capacity"`
	FilledCount int `db:"filled_count" json:"filled_count"`

	Pool money.Amount `db:"pool" json:"pool"`

	Status      string     `db:"status" json:"status"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// CyclePosition is one assigned slot in a global cycle. Positions are
// 1-based; once written a row is never updated.
type CyclePosition struct {
	ID       uuid.UUID `db:"id" json:"id"`
	CycleID  uuid.UUID `db:"cycle_id" json:"cycle_id"`
	MemberID uuid.UUID `db:"member_id" json:"member_id"`
	Position int       `db:"position" json:"position"`

	// SourceKey identifies what caused the enrollment (the activation
	// transaction, or the completed cycle for re-enrollments) and is
	// unique, so a replayed enrollment lands on the same row.
	SourceKey string `db:"source_key" json:"source_key"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PayoutQueueItem is a computed-but-not-yet-applied balance credit.
type PayoutQueueItem struct {
	ID            uuid.UUID `db:"id" json:"id"`
	BeneficiaryID uuid.UUID `db:"beneficiary_id" json:"beneficiary_id"`

	Amount money.Amount `db:"amount" json:"amount"`

	// SourceKey identifies the originating income entry or cycle slot.
	// Unique, so the same source can never spawn two items.
	SourceKey     string     `db:"source_key" json:"source_key"`
	IncomeEntryID *uuid.UUID `db:"income_entry_id" json:"income_entry_id,omitempty"`
	CycleID       *uuid.UUID `db:"cycle_id" json:"cycle_id,omitempty"`

	Status    string     `db:"status" json:"status"`
	AppliedAt *time.Time `db:"applied_at" json:"applied_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Withdrawal is a member's request to move funds out.
type Withdrawal struct {
	ID       uuid.UUID `db:"id" json:"id"`
	MemberID uuid.UUID `db:"member_id" json:"member_id"`

	Amount    money.Amount `db:"amount" json:"amount"`
	Method    string       `db:"method" json:"method"`
	Deduction money.Amount `db:"deduction" json:"deduction"`
	NetAmount money.Amount `db:"net_amount" json:"net_amount"`

	Status     string     `db:"status" json:"status"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
