package handler

import (
	"context"
	"errors"
	"net/http"

	"uplinepay/internal/apierrors"
	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CycleReader provides read access to global cycle state.
type CycleReader interface {
	GetOpenCycle(ctx context.Context, rankName string) (store.GlobalCycle, error)
	ListCyclePositions(ctx context.Context, cycleID uuid.UUID) ([]store.CyclePosition, error)
	GetMemberCyclePosition(ctx context.Context, memberID uuid.UUID, rankName string) (store.CyclePosition, error)
}

type Handler struct {
	reader CycleReader
	logger *observability.Logger
}

func New(reader CycleReader, logger *observability.Logger) Handler {
	return Handler{
		reader: reader,
		logger: logger,
	}
}

// HandleGetOpenCycle handles GET /api/cycles/:rank_name
func (h *Handler) HandleGetOpenCycle(c *gin.Context) {
	cycle, err := h.reader.GetOpenCycle(c.Request.Context(), c.Param("rank_name"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "CYCLE_NOT_FOUND", "No open cycle for this rank")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	positions, err := h.reader.ListCyclePositions(c.Request.Context(), cycle.ID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycle": cycle, "positions": positions})
}

// HandleGetMemberPosition handles GET /api/members/:member_id/cycles/:rank_name
func (h *Handler) HandleGetMemberPosition(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	pos, err := h.reader.GetMemberCyclePosition(c.Request.Context(), memberID, c.Param("rank_name"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "POSITION_NOT_FOUND", "Member holds no position in this rank's open cycle")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, pos)
}
