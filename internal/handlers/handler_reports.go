package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	portsrepo "github.com/finsight/spending_insights_app/internal/core/ports/repositories"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/dto"
	"github.com/finsight/spending_insights_app/internal/middleware"
	"github.com/finsight/spending_insights_app/pkg/reportexport"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the spending reports
type reportingHandler struct {
	ledgerRepo       portsrepo.LedgerRepository
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(ledgerRepo portsrepo.LedgerRepository, rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		ledgerRepo:       ledgerRepo,
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to spending reports
func registerReportingRoutes(rg *gin.RouterGroup, ledgerRepo portsrepo.LedgerRepository, rs portssvc.ReportingService) {
	h := newReportingHandler(ledgerRepo, rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/spending-by-category", h.getSpendingByCategory)
		reports.GET("/spending-by-weekday", h.getSpendingByWeekday)
		reports.GET("/spending-by-workday", h.getSpendingByWorkday)
	}
}

// getSpendingByCategory godoc
// @Summary Spending by category
// @Description Returns every transaction of the given category within the 90 days before the reference date
// @Tags reports
// @Produce json
// @Param category query string true "Category label (exact match)"
// @Param date query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Param file query string false "Optional export file for the report body"
// @Success 200 {object} dto.SpendingByCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /reports/spending-by-category [get]
func (h *reportingHandler) getSpendingByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SpendingByCategoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid spending-by-category query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required; date must be YYYY-MM-DD"})
		return
	}
	asOf := parseDateOrNow(req.Date)

	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	transactions, ok := runReport(c, req.File, func() ([]domain.TransactionRecord, error) {
		return h.reportingService.SpendingByCategory(c.Request.Context(), ledger, req.Category, asOf), nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.SpendingByCategoryResponse{
		Category:     req.Category,
		AsOf:         asOf.Format(domain.LedgerDateLayout),
		Transactions: transactions,
	})
}

// getSpendingByWeekday godoc
// @Summary Average spending per weekday
// @Description Returns the mean transaction amount per weekday (0=Monday) over the 90 days before the reference date
// @Tags reports
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Param file query string false "Optional export file for the report body"
// @Success 200 {object} dto.SpendingByWeekdayResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /reports/spending-by-weekday [get]
func (h *reportingHandler) getSpendingByWeekday(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SpendingWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid spending-by-weekday query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	asOf := parseDateOrNow(req.Date)

	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	rows, ok := runReport(c, req.File, func() ([]dto.WeekdayAverageResponse, error) {
		averages := h.reportingService.SpendingByWeekday(c.Request.Context(), ledger, asOf)
		rows := make([]dto.WeekdayAverageResponse, 0, len(averages))
		for _, avg := range averages {
			rows = append(rows, dto.WeekdayAverageResponse{Weekday: avg.Weekday, Average: avg.Average})
		}
		return rows, nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.SpendingByWeekdayResponse{
		AsOf: asOf.Format(domain.LedgerDateLayout),
		Rows: rows,
	})
}

// getSpendingByWorkday godoc
// @Summary Average spending for workdays vs weekends
// @Description Returns the mean transaction amount for workdays and weekends over the 90 days before the reference date
// @Tags reports
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Param file query string false "Optional export file for the report body"
// @Success 200 {object} dto.SpendingByWorkdayResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /reports/spending-by-workday [get]
func (h *reportingHandler) getSpendingByWorkday(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SpendingWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid spending-by-workday query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	asOf := parseDateOrNow(req.Date)

	ledger, ok := h.loadLedger(c)
	if !ok {
		return
	}

	rows, ok := runReport(c, req.File, func() ([]dto.WorkdayAverageResponse, error) {
		averages := h.reportingService.SpendingByWorkday(c.Request.Context(), ledger, asOf)
		rows := make([]dto.WorkdayAverageResponse, 0, len(averages))
		for _, avg := range averages {
			rows = append(rows, dto.WorkdayAverageResponse{IsWeekend: avg.IsWeekend, Average: avg.Average})
		}
		return rows, nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.SpendingByWorkdayResponse{
		AsOf: asOf.Format(domain.LedgerDateLayout),
		Rows: rows,
	})
}

// loadLedger fetches the full ledger, responding with a 500 on failure.
func (h *reportingHandler) loadLedger(c *gin.Context) ([]domain.TransactionRecord, bool) {
	ledger, err := h.ledgerRepo.ListTransactions(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transaction ledger"})
		return nil, false
	}
	return ledger, true
}

// runReport executes a report function, exporting its result when the
// caller asked for a file. Failures are responded to directly.
func runReport[T any](c *gin.Context, file string, fn reportexport.ReportFunc[T]) (T, bool) {
	var result T
	var err error
	if file == "" {
		result, err = fn()
	} else {
		result, err = reportexport.ToFile(fn, file)
	}
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Report production failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce report"})
		return result, false
	}
	return result, true
}

// exportReport writes an already-computed result when a file was requested.
func exportReport(c *gin.Context, file string, result any) bool {
	if file == "" {
		return true
	}
	if err := reportexport.Write(file, result); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Report export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return false
	}
	return true
}

// parseDateOrNow parses an already-validated YYYY-MM-DD value, defaulting to
// the current date when empty.
func parseDateOrNow(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	date, err := time.Parse(domain.LedgerDateLayout, value)
	if err != nil {
		return time.Now()
	}
	return date
}
