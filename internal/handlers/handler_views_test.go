package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finsight/spending_insights_app/internal/apperrors"
	"github.com/finsight/spending_insights_app/internal/core/domain"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/core/services"
	"github.com/finsight/spending_insights_app/internal/dto"
	"github.com/finsight/spending_insights_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ViewsHandlerTestSuite struct {
	suite.Suite
	mockRepo  *MockLedgerRepository
	mockViews *MockViewsService
	router    *gin.Engine
}

func (suite *ViewsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockViews = new(MockViewsService)

	container := &portssvc.ServiceContainer{
		Reporting: services.NewReportingService(),
		Search:    services.NewSearchService(),
		Views:     suite.mockViews,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.mockRepo, container)
}

func (suite *ViewsHandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ViewsHandlerTestSuite) TestGetMainPage() {
	expected := &dto.MainPageResponse{
		Greeting: "Добрый день!",
		Cards: []dto.CardBalance{
			{LastDigits: "5814", TotalSpent: decimal.NewFromFloat(1262.00), Cashback: decimal.NewFromFloat(12.62)},
		},
	}
	timestamp := time.Date(2023, time.December, 20, 14, 30, 0, 0, time.UTC)
	suite.mockViews.On("MainPage", mock.Anything, timestamp).Return(expected, nil).Once()

	w := suite.serve("/api/v1/views/main?datetime=2023-12-20%2014:30:00")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.MainPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Добрый день!", resp.Greeting)
	suite.Require().Len(resp.Cards, 1)
	suite.Equal("5814", resp.Cards[0].LastDigits)

	suite.mockViews.AssertExpectations(suite.T())
}

func (suite *ViewsHandlerTestSuite) TestGetMainPage_MalformedTimestamp() {
	w := suite.serve("/api/v1/views/main?datetime=20.12.2023")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockViews.AssertNotCalled(suite.T(), "MainPage")
}

func (suite *ViewsHandlerTestSuite) TestGetMainPage_ConfigurationError() {
	suite.mockViews.On("MainPage", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: API_KEY is not set in the environment", apperrors.ErrValidation)).Once()

	w := suite.serve("/api/v1/views/main")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "API_KEY")
}

func (suite *ViewsHandlerTestSuite) TestGetEventsPage() {
	ledger := fixtureLedger()
	date := fixtureDate("2023-12-20")
	expected := &dto.EventsPageResponse{
		Expenses: &dto.ExpenseSummary{TotalAmount: decimal.NewFromInt(4800)},
		Income:   &dto.IncomeSummary{TotalAmount: decimal.Zero},
	}
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(ledger, nil).Once()
	suite.mockViews.On("EventsPage", mock.Anything, ledger, date, "month").Return(expected).Once()

	w := suite.serve("/api/v1/views/events?date=2023-12-20")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.EventsPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Expenses)
	suite.True(resp.Expenses.TotalAmount.Equal(decimal.NewFromInt(4800)))
	suite.Empty(resp.Error)

	suite.mockViews.AssertExpectations(suite.T())
}

func (suite *ViewsHandlerTestSuite) TestGetEventsPage_DefaultsRangeToMonth() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()
	suite.mockViews.On("EventsPage", mock.Anything, mock.Anything, mock.Anything, "month").
		Return(&dto.EventsPageResponse{}).Once()

	w := suite.serve("/api/v1/views/events")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockViews.AssertExpectations(suite.T())
}

func (suite *ViewsHandlerTestSuite) TestGetEventsPage_ExplicitRangePassedThrough() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()
	suite.mockViews.On("EventsPage", mock.Anything, mock.Anything, mock.Anything, "week").
		Return(&dto.EventsPageResponse{}).Once()

	w := suite.serve("/api/v1/views/events?range=week")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockViews.AssertExpectations(suite.T())
}

func (suite *ViewsHandlerTestSuite) TestGetEventsPage_ErrorDocumentStillOK() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return([]domain.TransactionRecord{}, nil).Once()
	suite.mockViews.On("EventsPage", mock.Anything, mock.Anything, mock.Anything, "month").
		Return(&dto.EventsPageResponse{Error: "No transactions provided."}).Once()

	w := suite.serve("/api/v1/views/events")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.EventsPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("No transactions provided.", resp.Error)
	suite.Nil(resp.Expenses)
}

func TestViewsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ViewsHandlerTestSuite))
}
