package apierrors

import (
	"errors"

	activationProcessor "uplinepay/internal/activation/processor"
	incomeProcessor "uplinepay/internal/income/processor"
	matrixProcessor "uplinepay/internal/matrix/processor"
	membersProcessor "uplinepay/internal/members/processor"
	"uplinepay/internal/ranks"
	withdrawalsProcessor "uplinepay/internal/withdrawals/processor"

	"github.com/gin-gonic/gin"
)

// Error codes returned to API clients
const (
	CodeMemberNotFound     = "MEMBER_NOT_FOUND"
	CodeSponsorNotFound    = "SPONSOR_NOT_FOUND"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidRank        = "INVALID_RANK"
	CodeSequenceViolation  = "RANK_SEQUENCE_VIOLATION"
	CodeDuplicatePending   = "DUPLICATE_PENDING_TRANSACTION"
	CodeDuplicateProof     = "DUPLICATE_PROOF"
	CodeInsufficientFunds  = "INSUFFICIENT_BALANCE"
	CodeInvalidPayment     = "INVALID_PAYMENT_DETAILS"
	CodeTxNotPending       = "TRANSACTION_NOT_PENDING"
	CodeTxNotFound         = "TRANSACTION_NOT_FOUND"
	CodeNotDistributable   = "TRANSACTION_NOT_DISTRIBUTABLE"
	CodeConflictRetry      = "CONFLICT_RETRY"
	CodeBelowMinimum       = "BELOW_WITHDRAWAL_MINIMUM"
	CodeInvalidMethod      = "INVALID_WITHDRAWAL_METHOD"
	CodeWithdrawalNotFound = "WITHDRAWAL_NOT_FOUND"
	CodeNotPending         = "WITHDRAWAL_NOT_PENDING"
	CodeRankNotFound       = "RANK_NOT_FOUND"
	CodeBadCycleSize       = "BAD_CYCLE_SIZE"
	CodeBadRankAmount      = "BAD_RANK_AMOUNT"
)

// HandleError converts domain errors to API responses. Centralized so
// every handler maps the same error to the same status and code.
// Unknown errors become a sanitized 500.
func HandleError(c *gin.Context, err error) {
	switch {
	// Member errors
	case errors.Is(err, membersProcessor.ErrMemberNotFound):
		NotFound(c, CodeMemberNotFound, "Member not found")
	case errors.Is(err, membersProcessor.ErrSponsorNotFound):
		BadRequest(c, CodeSponsorNotFound, "Sponsor not found")
	case errors.Is(err, membersProcessor.ErrEmailTaken):
		Conflict(c, CodeEmailTaken, "Email already registered")
	case errors.Is(err, membersProcessor.ErrInvalidEmail):
		BadRequest(c, CodeInvalidEmail, "Invalid email address")

	// Activation errors
	case errors.Is(err, activationProcessor.ErrMemberNotFound):
		NotFound(c, CodeMemberNotFound, "Member not found")
	case errors.Is(err, activationProcessor.ErrInvalidRank):
		BadRequest(c, CodeInvalidRank, "Unknown rank")
	case errors.Is(err, activationProcessor.ErrSequenceViolation):
		UnprocessableEntity(c, CodeSequenceViolation, "Rank must be purchased in sequence")
	case errors.Is(err, activationProcessor.ErrDuplicatePendingTransaction):
		Conflict(c, CodeDuplicatePending, "A pending transaction already exists for this member")
	case errors.Is(err, activationProcessor.ErrDuplicateProof):
		Conflict(c, CodeDuplicateProof, "Payment proof already used")
	case errors.Is(err, activationProcessor.ErrInsufficientBalance):
		UnprocessableEntity(c, CodeInsufficientFunds, "Insufficient available balance")
	case errors.Is(err, activationProcessor.ErrInvalidPaymentDetails):
		BadRequest(c, CodeInvalidPayment, "Invalid payment details for the chosen method")
	case errors.Is(err, activationProcessor.ErrTransactionNotPending):
		Conflict(c, CodeTxNotPending, "Transaction is not pending")
	case errors.Is(err, activationProcessor.ErrTransactionNotFound):
		NotFound(c, CodeTxNotFound, "Transaction not found")

	// Income and matrix errors
	case errors.Is(err, incomeProcessor.ErrNotDistributable):
		Conflict(c, CodeNotDistributable, "Transaction is not in a distributable state")
	case errors.Is(err, matrixProcessor.ErrEnrollFailed):
		// Transient: the member kept losing the open-cycle race.
		Conflict(c, CodeConflictRetry, "Cycle enrollment contention, retry the request")

	// Withdrawal errors
	case errors.Is(err, withdrawalsProcessor.ErrBelowMinimum):
		UnprocessableEntity(c, CodeBelowMinimum, "Amount is below the withdrawal minimum")
	case errors.Is(err, withdrawalsProcessor.ErrInsufficientBalance):
		UnprocessableEntity(c, CodeInsufficientFunds, "Insufficient available balance")
	case errors.Is(err, withdrawalsProcessor.ErrInvalidMethod):
		BadRequest(c, CodeInvalidMethod, "Invalid withdrawal method")
	case errors.Is(err, withdrawalsProcessor.ErrWithdrawalNotFound):
		NotFound(c, CodeWithdrawalNotFound, "Withdrawal not found")
	case errors.Is(err, withdrawalsProcessor.ErrNotPending):
		Conflict(c, CodeNotPending, "Withdrawal is not pending")

	// Rank catalog errors
	case errors.Is(err, ranks.ErrRankNotFound):
		NotFound(c, CodeRankNotFound, "Rank not found")
	case errors.Is(err, ranks.ErrBadCycleSize):
		BadRequest(c, CodeBadCycleSize, "Cycle size must be a power of two")
	case errors.Is(err, ranks.ErrAmountNotIncreasing):
		BadRequest(c, CodeBadRankAmount, "Activation amounts must increase with rank")

	default:
		InternalError(c, err)
	}
}
