package handler

import (
	"net/http"

	"uplinepay/internal/apierrors"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/withdrawals/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.WithdrawalProcessor
	logger    *observability.Logger
}

func New(processor *processor.WithdrawalProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RequestWithdrawalRequest represents the HTTP request for a withdrawal
type RequestWithdrawalRequest struct {
	Amount string `json:"amount" binding:"required"`
	Method string `json:"method" binding:"required,oneof=bank on_chain internal p2p"`
}

// HandleRequest handles POST /api/members/:member_id/withdrawals
func (h *Handler) HandleRequest(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	var req RequestWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "amount must be a decimal string like 100.00")
		return
	}

	w, err := h.processor.Request(c.Request.Context(), memberID, amount, req.Method)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

// HandleGetHistory handles GET /api/members/:member_id/withdrawals
func (h *Handler) HandleGetHistory(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	ws, err := h.processor.History(c.Request.Context(), memberID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawals": ws})
}

// HandleCancel handles POST /api/members/:member_id/withdrawals/:withdrawal_id/cancel
func (h *Handler) HandleCancel(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}
	withdrawalID, err := uuid.Parse(c.Param("withdrawal_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "withdrawal_id must be a valid UUID")
		return
	}

	w, err := h.processor.Cancel(c.Request.Context(), memberID, withdrawalID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

// HandleListPending handles GET /api/admin/withdrawals/pending
func (h *Handler) HandleListPending(c *gin.Context) {
	ws, err := h.processor.ListPending(c.Request.Context())
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawals": ws})
}

// HandleApprove handles POST /api/admin/withdrawals/:withdrawal_id/approve
func (h *Handler) HandleApprove(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("withdrawal_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "withdrawal_id must be a valid UUID")
		return
	}

	w, err := h.processor.Approve(c.Request.Context(), withdrawalID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

// HandleReject handles POST /api/admin/withdrawals/:withdrawal_id/reject
func (h *Handler) HandleReject(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("withdrawal_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "withdrawal_id must be a valid UUID")
		return
	}

	w, err := h.processor.Reject(c.Request.Context(), withdrawalID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}
