package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finsight/spending_insights_app/internal/apperrors"
	"github.com/finsight/spending_insights_app/internal/core/domain"
	portsrepo "github.com/finsight/spending_insights_app/internal/core/ports/repositories"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/dto"
	"github.com/finsight/spending_insights_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// servicesHandler handles HTTP requests for cashback analysis, round-up
// savings and the transaction search filters
type servicesHandler struct {
	ledgerRepo       portsrepo.LedgerRepository
	reportingService portssvc.ReportingService
	searchService    portssvc.SearchService
}

// newServicesHandler creates a new servicesHandler
func newServicesHandler(ledgerRepo portsrepo.LedgerRepository, rs portssvc.ReportingService, ss portssvc.SearchService) *servicesHandler {
	return &servicesHandler{
		ledgerRepo:       ledgerRepo,
		reportingService: rs,
		searchService:    ss,
	}
}

// registerServicesRoutes registers routes for the analysis and search services
func registerServicesRoutes(rg *gin.RouterGroup, ledgerRepo portsrepo.LedgerRepository, rs portssvc.ReportingService, ss portssvc.SearchService) {
	h := newServicesHandler(ledgerRepo, rs, ss)

	services := rg.Group("/services")
	{
		services.GET("/cashback", h.getCashbackAnalysis)
		services.GET("/investment", h.getInvestmentRoundUp)
		services.GET("/search", h.searchTransactions)
		services.GET("/phone-numbers", h.getPhoneNumberTransactions)
		services.GET("/person-transfers", h.getPersonTransfers)
	}
}

// getCashbackAnalysis godoc
// @Summary Cashback by category
// @Description Sums positive cashback per category for the given calendar month
// @Tags services
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param file query string false "Optional export file for the report body"
// @Success 200 {object} dto.CashbackAnalysisResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /services/cashback [get]
func (h *servicesHandler) getCashbackAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CashbackAnalysisRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid cashback query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month (1-12) are required"})
		return
	}

	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	byCategory, ok := runReport(c, req.File, func() (map[string]decimal.Decimal, error) {
		return h.reportingService.AnalyzeCashback(c.Request.Context(), ledger, req.Year, time.Month(req.Month)), nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.CashbackAnalysisResponse{
		Year:       req.Year,
		Month:      req.Month,
		ByCategory: byCategory,
	})
}

// getInvestmentRoundUp godoc
// @Summary Round-up savings for a month
// @Description Sums the round-up to the next multiple of limit over the month's transactions
// @Tags services
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Param limit query int true "Rounding limit"
// @Param file query string false "Optional export file for the report body"
// @Success 200 {object} dto.InvestmentRoundUpResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /services/investment [get]
func (h *servicesHandler) getInvestmentRoundUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InvestmentRoundUpRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid investment query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "month (YYYY-MM) and limit are required"})
		return
	}

	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	savings, err := h.reportingService.InvestmentRoundUp(c.Request.Context(), ledger, req.Month, req.Limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid round-up parameters", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Round-up computation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute round-up savings"})
		return
	}
	if !exportReport(c, req.File, savings) {
		return
	}

	c.JSON(http.StatusOK, dto.InvestmentRoundUpResponse{
		Month:   req.Month,
		Limit:   req.Limit,
		Savings: savings,
	})
}

// searchTransactions godoc
// @Summary Search transactions
// @Description Case-insensitive substring search over description and category
// @Tags services
// @Produce json
// @Param query query string true "Search string"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /services/search [get]
func (h *servicesHandler) searchTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid search query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	matched := h.searchService.Search(c.Request.Context(), ledger, req.Query)
	c.JSON(http.StatusOK, dto.SearchResponse{
		Query:        req.Query,
		Count:        len(matched),
		Transactions: matched,
	})
}

// getPhoneNumberTransactions godoc
// @Summary Transactions mentioning phone numbers
// @Description Returns transactions whose description contains a +7 XXX XXX-XX-XX mobile number
// @Tags services
// @Produce json
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /services/phone-numbers [get]
func (h *servicesHandler) getPhoneNumberTransactions(c *gin.Context) {
	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	matched := h.searchService.FindPhoneNumbers(c.Request.Context(), ledger)
	c.JSON(http.StatusOK, dto.SearchResponse{
		Count:        len(matched),
		Transactions: matched,
	})
}

// getPersonTransfers godoc
// @Summary Transfers to people
// @Description Returns transfer-category transactions whose description names a person
// @Tags services
// @Produce json
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /services/person-transfers [get]
func (h *servicesHandler) getPersonTransfers(c *gin.Context) {
	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	matched := h.searchService.FindPersonTransfers(c.Request.Context(), ledger)
	c.JSON(http.StatusOK, dto.SearchResponse{
		Count:        len(matched),
		Transactions: matched,
	})
}

// loadLedger fetches the full ledger, responding with a 500 on failure.
func (h *servicesHandler) loadLedger(c *gin.Context) ([]domain.TransactionRecord, bool) {
	ledger, err := h.ledgerRepo.ListTransactions(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transaction ledger"})
		return nil, false
	}
	return ledger, true
}
