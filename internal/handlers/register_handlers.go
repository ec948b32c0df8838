package handlers

import (
	portsrepo "github.com/finsight/spending_insights_app/internal/core/ports/repositories"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	ledgerRepo portsrepo.LedgerRepository,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, ledgerRepo, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	ledgerRepo portsrepo.LedgerRepository,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerReportingRoutes(v1, ledgerRepo, services.Reporting)
	registerServicesRoutes(v1, ledgerRepo, services.Reporting, services.Search)
	registerViewsRoutes(v1, ledgerRepo, services.Views)
}
