package services

import (
	"context"
	"time"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	"github.com/finsight/spending_insights_app/internal/dto"
)

// ViewsService assembles the two dashboard documents from the aggregation
// engine and the market data gateway.
type ViewsService interface {
	// MainPage builds the greeting/cards/rates/prices document for the
	// given timestamp. This is the single path that may return an error:
	// a missing API key is a configuration problem surfaced as
	// apperrors.ErrValidation.
	MainPage(ctx context.Context, timestamp time.Time) (*dto.MainPageResponse, error)

	// EventsPage builds the expense/income rollup document for the window
	// ending at date. It never returns an error: empty ledgers, unknown
	// range options and gateway failures all produce a document with its
	// Error field set.
	EventsPage(ctx context.Context, ledger []domain.TransactionRecord, date time.Time, rangeOption string) *dto.EventsPageResponse
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Reporting ReportingService
	Search    SearchService
	Market    MarketDataSvc
	Views     ViewsService
}
