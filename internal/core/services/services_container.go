package services

import (
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, market portssvc.MarketDataSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Reporting = NewReportingService()
	container.Search = NewSearchService()
	container.Market = market

	// Views composes the reporting rollups with the market gateway
	container.Views = NewViewsService(cfg, market)

	return container
}
