package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/core/services"
	"github.com/finsight/spending_insights_app/internal/dto"
	"github.com/finsight/spending_insights_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ServicesHandlerTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	router   *gin.Engine
}

func (suite *ServicesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRepo = new(MockLedgerRepository)

	container := &portssvc.ServiceContainer{
		Reporting: services.NewReportingService(),
		Search:    services.NewSearchService(),
		Views:     new(MockViewsService),
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.mockRepo, container)
}

func (suite *ServicesHandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ServicesHandlerTestSuite) TestGetCashbackAnalysis() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()

	w := suite.serve("/api/v1/services/cashback?year=2023&month=12")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.CashbackAnalysisResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2023, resp.Year)
	suite.Equal(12, resp.Month)
	suite.Require().Len(resp.ByCategory, 2)
	suite.Equal("15", resp.ByCategory["Супермаркеты"].String())
	suite.Equal("8", resp.ByCategory["Рестораны"].String())
}

func (suite *ServicesHandlerTestSuite) TestGetCashbackAnalysis_MissingParams() {
	w := suite.serve("/api/v1/services/cashback?year=2023")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *ServicesHandlerTestSuite) TestGetCashbackAnalysis_MonthOutOfRange() {
	w := suite.serve("/api/v1/services/cashback?year=2023&month=13")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ServicesHandlerTestSuite) TestGetInvestmentRoundUp() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()

	w := suite.serve("/api/v1/services/investment?month=2023-12&limit=1000")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.InvestmentRoundUpResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2023-12", resp.Month)
	suite.Equal(int64(1000), resp.Limit)
	// 1500→2000 adds 500, 800→1000 adds 200, 2000 is aligned, 500→1000 adds 500.
	suite.Equal("1200", resp.Savings.String())
}

func (suite *ServicesHandlerTestSuite) TestGetInvestmentRoundUp_InvalidMonth() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()

	w := suite.serve("/api/v1/services/investment?month=december&limit=50")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ServicesHandlerTestSuite) TestGetInvestmentRoundUp_ExportsToFile() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()
	exportPath := filepath.Join(suite.T().TempDir(), "savings.json")

	w := suite.serve("/api/v1/services/investment?month=2023-12&limit=1000&file=" + url.QueryEscape(exportPath))

	suite.Require().Equal(http.StatusOK, w.Code)
	raw, err := os.ReadFile(exportPath)
	suite.Require().NoError(err)
	suite.Contains(string(raw), "1200")
}

func (suite *ServicesHandlerTestSuite) TestSearchTransactions() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()

	w := suite.serve("/api/v1/services/search?query=" + url.QueryEscape("перевод"))

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SearchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Count)
	suite.Len(resp.Transactions, 2)
}

func (suite *ServicesHandlerTestSuite) TestSearchTransactions_MissingQuery() {
	w := suite.serve("/api/v1/services/search")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ServicesHandlerTestSuite) TestGetPhoneNumberTransactions() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()

	w := suite.serve("/api/v1/services/phone-numbers")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SearchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Equal("+7 123 456-78-90", resp.Transactions[0].Description)
}

func (suite *ServicesHandlerTestSuite) TestGetPersonTransfers() {
	suite.mockRepo.On("ListTransactions", mock.Anything).Return(fixtureLedger(), nil).Once()

	w := suite.serve("/api/v1/services/person-transfers")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SearchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Equal("Перевод Алисе", resp.Transactions[0].Description)
}

func TestServicesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesHandlerTestSuite))
}
