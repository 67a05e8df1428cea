package handler

import (
	"net/http"

	"uplinepay/internal/apierrors"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/ranks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *ranks.Service
	logger  *observability.Logger
}

func New(service *ranks.Service, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /api/ranks
func (h *Handler) HandleList(c *gin.Context) {
	rs, err := h.service.List(c.Request.Context())
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ranks": rs})
}

// HandleGet handles GET /api/ranks/:name
func (h *Handler) HandleGet(c *gin.Context) {
	rank, err := h.service.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rank)
}

// CreateRankRequest represents the HTTP request for adding a tier
type CreateRankRequest struct {
	Name                string `json:"name" binding:"required,min=1,max=50"`
	RankIndex           int    `json:"rank_index" binding:"required,gte=1"`
	ActivationAmount    string `json:"activation_amount" binding:"required"`
	LevelIncomeEnabled  bool   `json:"level_income_enabled"`
	GlobalIncomeEnabled bool   `json:"global_income_enabled"`
	CycleSize           int    `json:"cycle_size" binding:"required,gte=2"`
}

// HandleCreate handles POST /api/admin/ranks
func (h *Handler) HandleCreate(c *gin.Context) {
	var req CreateRankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	amount, err := money.Parse(req.ActivationAmount)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "activation_amount must be a decimal string like 50.00")
		return
	}

	rank, err := h.service.Create(c.Request.Context(), ranks.CreateRankRequest{
		Name:                req.Name,
		RankIndex:           req.RankIndex,
		ActivationAmount:    amount,
		LevelIncomeEnabled:  req.LevelIncomeEnabled,
		GlobalIncomeEnabled: req.GlobalIncomeEnabled,
		CycleSize:           req.CycleSize,
	})
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rank)
}

// UpdateRankRequest represents the HTTP request for editing a tier
type UpdateRankRequest struct {
	ActivationAmount    string `json:"activation_amount" binding:"required"`
	LevelIncomeEnabled  bool   `json:"level_income_enabled"`
	GlobalIncomeEnabled bool   `json:"global_income_enabled"`
	CycleSize           int    `json:"cycle_size" binding:"required,gte=2"`
}

// HandleUpdate handles PUT /api/admin/ranks/:rank_id
func (h *Handler) HandleUpdate(c *gin.Context) {
	rankID, err := uuid.Parse(c.Param("rank_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "rank_id must be a valid UUID")
		return
	}

	var req UpdateRankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	amount, err := money.Parse(req.ActivationAmount)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "activation_amount must be a decimal string like 50.00")
		return
	}

	rank, err := h.service.Update(c.Request.Context(), rankID, ranks.UpdateRankRequest{
		ActivationAmount:    amount,
		LevelIncomeEnabled:  req.LevelIncomeEnabled,
		GlobalIncomeEnabled: req.GlobalIncomeEnabled,
		CycleSize:           req.CycleSize,
	})
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rank)
}
