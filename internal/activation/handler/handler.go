package handler

import (
	"net/http"

	"uplinepay/internal/activation/processor"
	"uplinepay/internal/apierrors"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.ActivationProcessor
	logger    *observability.Logger
}

func New(processor *processor.ActivationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ActivateRequest represents the HTTP request for rank activation
type ActivateRequest struct {
	Rank          string `json:"rank" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=on_chain internal p2p"`
	TxHash        string `json:"tx_hash,omitempty"`
	Reference     string `json:"reference,omitempty"`
	Amount        string `json:"amount,omitempty"`
}

// HandleActivate handles POST /api/members/:member_id/activations
func (h *Handler) HandleActivate(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	details := processor.PaymentDetails{
		Method:    req.PaymentMethod,
		TxHash:    req.TxHash,
		Reference: req.Reference,
	}
	if req.Amount != "" {
		amount, err := money.Parse(req.Amount)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "amount must be a decimal string like 50.00")
			return
		}
		details.Amount = amount
	}

	tx, err := h.processor.Activate(c.Request.Context(), memberID, req.Rank, details)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// HandleGetTransaction handles GET /api/activations/:tx_id
func (h *Handler) HandleGetTransaction(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("tx_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "tx_id must be a valid UUID")
		return
	}

	tx, err := h.processor.GetTransaction(c.Request.Context(), txID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// HandleGetHistory handles GET /api/members/:member_id/activations
func (h *Handler) HandleGetHistory(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	txs, err := h.processor.History(c.Request.Context(), memberID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// HandleConfirm handles POST /api/admin/activations/:tx_id/confirm
func (h *Handler) HandleConfirm(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("tx_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "tx_id must be a valid UUID")
		return
	}

	tx, err := h.processor.Confirm(c.Request.Context(), txID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// HandleRedistribute handles POST /api/admin/activations/:tx_id/redistribute.
// It resumes an income fan-out that died partway; a fully distributed
// transaction comes back unchanged.
func (h *Handler) HandleRedistribute(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("tx_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "tx_id must be a valid UUID")
		return
	}

	dist, err := h.processor.Redistribute(c.Request.Context(), txID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dist)
}

// HandleReject handles POST /api/admin/activations/:tx_id/reject
func (h *Handler) HandleReject(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("tx_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "tx_id must be a valid UUID")
		return
	}

	tx, err := h.processor.Reject(c.Request.Context(), txID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}
