package handler

import (
	"context"
	"net/http"

	"uplinepay/internal/apierrors"
	"uplinepay/internal/observability"
	payoutsProcessor "uplinepay/internal/payouts/processor"

	"github.com/gin-gonic/gin"
)

// PayoutDrainer triggers one drain pass over the payout queue.
type PayoutDrainer interface {
	ProcessQueue(ctx context.Context) (payoutsProcessor.Summary, error)
}

// Handler exposes the operator-only surface: manual payout drains and
// queue inspection. Admin rank, activation, and withdrawal routes are
// served by their own verticals.
type Handler struct {
	drainer PayoutDrainer
	logger  *observability.Logger
}

func New(drainer PayoutDrainer, logger *observability.Logger) Handler {
	return Handler{
		drainer: drainer,
		logger:  logger,
	}
}

// HandleProcessPayouts handles POST /api/admin/payouts/process. It
// runs the same drain the scheduler runs, sharing its claim guard, so
// a manual trigger alongside the interval job is safe.
func (h *Handler) HandleProcessPayouts(c *gin.Context) {
	summary, err := h.drainer.ProcessQueue(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
