package store

// Rank ENUMs
const (
	RankInactive = "inactive"
)

// Activation Transaction ENUMs
const (
	ActivationStatusPending   = "pending"
	ActivationStatusCompleted = "completed"
	ActivationStatusRejected  = "rejected"
)

const (
	PaymentMethodOnChain  = "on_chain"
	PaymentMethodInternal = "internal"
	PaymentMethodP2P      = "p2p"
)

// Income Entry ENUMs
const (
	IncomeKindReferral = "referral"
	IncomeKindLevel    = "level"
	IncomeKindReTopup  = "re_topup"
)

const (
	IncomeStatusPending   = "pending"
	IncomeStatusCompleted = "completed"
)

// Global Cycle ENUMs
const (
	CycleStatusOpen     = "open"
	CycleStatusFilling  = "filling"
	CycleStatusComplete = "complete"
)

// Payout Queue ENUMs
const (
	PayoutStatusQueued     = "queued"
	PayoutStatusProcessing = "processing"
	PayoutStatusApplied    = "applied"
	PayoutStatusFailed     = "failed"
)

// Withdrawal ENUMs
const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusCompleted = "completed"
	WithdrawalStatusRejected  = "rejected"
	WithdrawalStatusCancelled = "cancelled"
)

const (
	WithdrawalMethodBank     = "bank"
	WithdrawalMethodOnChain  = "on_chain"
	WithdrawalMethodInternal = "internal"
	WithdrawalMethodP2P      = "p2p"
)
