package api

import (
	"net/http"

	activationHandler "uplinepay/internal/activation/handler"
	adminHandler "uplinepay/internal/admin/handler"
	matrixHandler "uplinepay/internal/matrix/handler"
	membersHandler "uplinepay/internal/members/handler"
	ranksHandler "uplinepay/internal/ranks/handler"
	withdrawalsHandler "uplinepay/internal/withdrawals/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	membersHandler     membersHandler.Handler
	activationHandler  activationHandler.Handler
	withdrawalsHandler withdrawalsHandler.Handler
	ranksHandler       ranksHandler.Handler
	matrixHandler      matrixHandler.Handler
	adminHandler       adminHandler.Handler
	rateLimiter        gin.HandlerFunc
}

func New(
	router *gin.RouterGroup,
	membersHandler membersHandler.Handler,
	activationHandler activationHandler.Handler,
	withdrawalsHandler withdrawalsHandler.Handler,
	ranksHandler ranksHandler.Handler,
	matrixHandler matrixHandler.Handler,
	adminHandler adminHandler.Handler,
	rateLimiter gin.HandlerFunc,
) API {
	return API{
		router:             router,
		membersHandler:     membersHandler,
		activationHandler:  activationHandler,
		withdrawalsHandler: withdrawalsHandler,
		ranksHandler:       ranksHandler,
		matrixHandler:      matrixHandler,
		adminHandler:       adminHandler,
		rateLimiter:        rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/ranks", a.ranksHandler.HandleList)
		apiGroup.GET("/ranks/:name", a.ranksHandler.HandleGet)
		apiGroup.GET("/cycles/:rank_name", a.matrixHandler.HandleGetOpenCycle)
		apiGroup.GET("/activations/:tx_id", a.activationHandler.HandleGetTransaction)
	}

	membersGroup := apiGroup.Group("/members")
	{
		membersGroup.POST("", a.membersHandler.HandleRegister)
		membersGroup.GET("/:member_id", a.membersHandler.HandleGetMember)
		membersGroup.GET("/:member_id/income", a.membersHandler.HandleGetIncomeHistory)
		membersGroup.GET("/:member_id/activations", a.activationHandler.HandleGetHistory)
		membersGroup.GET("/:member_id/withdrawals", a.withdrawalsHandler.HandleGetHistory)
		membersGroup.GET("/:member_id/cycles/:rank_name", a.matrixHandler.HandleGetMemberPosition)

		// Money-moving routes sit behind the rate limiter.
		membersGroup.POST("/:member_id/activations", a.rateLimiter, a.activationHandler.HandleActivate)
		membersGroup.POST("/:member_id/withdrawals", a.rateLimiter, a.withdrawalsHandler.HandleRequest)
		membersGroup.POST("/:member_id/withdrawals/:withdrawal_id/cancel", a.rateLimiter, a.withdrawalsHandler.HandleCancel)
	}

	adminGroup := apiGroup.Group("/admin")
	{
		adminGroup.POST("/ranks", a.ranksHandler.HandleCreate)
		adminGroup.PUT("/ranks/:rank_id", a.ranksHandler.HandleUpdate)
		adminGroup.POST("/activations/:tx_id/confirm", a.activationHandler.HandleConfirm)
		adminGroup.POST("/activations/:tx_id/reject", a.activationHandler.HandleReject)
		adminGroup.POST("/activations/:tx_id/redistribute", a.activationHandler.HandleRedistribute)
		adminGroup.GET("/withdrawals/pending", a.withdrawalsHandler.HandleListPending)
		adminGroup.POST("/withdrawals/:withdrawal_id/approve", a.withdrawalsHandler.HandleApprove)
		adminGroup.POST("/withdrawals/:withdrawal_id/reject", a.withdrawalsHandler.HandleReject)
		adminGroup.POST("/payouts/process", a.adminHandler.HandleProcessPayouts)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
