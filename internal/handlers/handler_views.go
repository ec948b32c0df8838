package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finsight/spending_insights_app/internal/apperrors"
	portsrepo "github.com/finsight/spending_insights_app/internal/core/ports/repositories"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/dto"
	"github.com/finsight/spending_insights_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mainPageTimeLayout is the timestamp format the main page accepts.
const mainPageTimeLayout = "2006-01-02 15:04:05"

// viewsHandler handles HTTP requests for the dashboard pages
type viewsHandler struct {
	ledgerRepo   portsrepo.LedgerRepository
	viewsService portssvc.ViewsService
}

// newViewsHandler creates a new viewsHandler
func newViewsHandler(ledgerRepo portsrepo.LedgerRepository, vs portssvc.ViewsService) *viewsHandler {
	return &viewsHandler{
		ledgerRepo:   ledgerRepo,
		viewsService: vs,
	}
}

// registerViewsRoutes registers routes for the dashboard pages
func registerViewsRoutes(rg *gin.RouterGroup, ledgerRepo portsrepo.LedgerRepository, vs portssvc.ViewsService) {
	h := newViewsHandler(ledgerRepo, vs)

	views := rg.Group("/views")
	{
		views.GET("/main", h.getMainPage)
		views.GET("/events", h.getEventsPage)
	}
}

// getMainPage godoc
// @Summary Main dashboard page
// @Description Greeting, card balances, highlighted transactions, currency rates and stock prices
// @Tags views
// @Produce json
// @Param datetime query string false "Timestamp (YYYY-MM-DD HH:MM:SS)" default(current time)
// @Success 200 {object} dto.MainPageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Configuration error"
// @Router /views/main [get]
func (h *viewsHandler) getMainPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MainPageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid main page query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "datetime must be YYYY-MM-DD HH:MM:SS"})
		return
	}

	timestamp := time.Now()
	if req.Datetime != "" {
		timestamp, _ = time.Parse(mainPageTimeLayout, req.Datetime)
	}

	page, err := h.viewsService.MainPage(c.Request.Context(), timestamp)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Main page configuration error", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to assemble main page", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble main page"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// getEventsPage godoc
// @Summary Events dashboard page
// @Description Expense and income rollups for a date range, with currency rates and stock prices
// @Tags views
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Param range query string false "Range option: week, month, year or all" default(month)
// @Success 200 {object} dto.EventsPageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /views/events [get]
func (h *viewsHandler) getEventsPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EventsPageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid events page query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	date := parseDateOrNow(req.Date)
	rangeOption := req.Range
	if rangeOption == "" {
		rangeOption = "month"
	}

	ledger, err := h.ledgerRepo.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transaction ledger"})
		return
	}

	// The events page never fails: problems come back inside the document.
	page := h.viewsService.EventsPage(c.Request.Context(), ledger, date, rangeOption)
	c.JSON(http.StatusOK, page)
}
