package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lumasoft/lending-ledger/internal/middleware"
	"github.com/lumasoft/lending-ledger/internal/platform/config"

	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	registerLedgerRoutes(v1, services.Posting, services.Allocation, services.Balance)
	registerTransactionRoutes(v1, services.Transaction)
	registerLoanRoutes(v1, services.Loan, services.Balance, services.Subscription)
}
