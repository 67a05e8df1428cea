package handler

import (
	"net/http"
	"strconv"

	"uplinepay/internal/apierrors"
	"uplinepay/internal/members/processor"
	"uplinepay/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.MemberProcessor
	logger    *observability.Logger
}

func New(processor *processor.MemberProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterRequest represents the HTTP request for member registration
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string  `json:"last_name" binding:"required,min=1,max=100"`
	SponsorID *string `json:"sponsor_id,omitempty" binding:"omitempty,uuid"`
}

// HandleRegister handles POST /api/members
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params := processor.RegisterParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.SponsorID != nil {
		sponsorID, err := uuid.Parse(*req.SponsorID)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "sponsor_id must be a valid UUID")
			return
		}
		params.SponsorID = &sponsorID
	}

	member, err := h.processor.Register(c.Request.Context(), params)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// HandleGetMember handles GET /api/members/:member_id
func (h *Handler) HandleGetMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	member, err := h.processor.Get(c.Request.Context(), memberID)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// HandleGetIncomeHistory handles GET /api/members/:member_id/income
func (h *Handler) HandleGetIncomeHistory(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "member_id must be a valid UUID")
		return
	}

	page := 0
	if pageStr := c.Query("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			apierrors.BadRequest(c, "INVALID_INPUT", "page must be a non-negative integer")
			return
		}
	}

	entries, err := h.processor.IncomeHistory(c.Request.Context(), memberID, page)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "page": page})
}
