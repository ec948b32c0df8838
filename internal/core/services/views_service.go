package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/finsight/spending_insights_app/internal/apperrors"
	"github.com/finsight/spending_insights_app/internal/core/domain"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/dto"
	"github.com/finsight/spending_insights_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// Range options accepted by the events page.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
	RangeAll   = "all"
)

// remainderBucket is the fixed label for the long-tail expense bucket.
const remainderBucket = "Остальное"

// topCategoryCount caps the per-direction category rollups on the events page.
const topCategoryCount = 7

// Error messages carried inside events-page documents.
const (
	errMsgEmptyLedger  = "No transactions provided."
	errMsgInvalidRange = "Invalid range option."
	errMsgMissingKey   = "API_KEY not found."
)

// fallbackRates is the static snapshot used when the rate gateway is down.
var fallbackRates = []dto.CurrencyRate{
	{Currency: "USD", Rate: decimal.NewFromFloat(73.21)},
	{Currency: "EUR", Rate: decimal.NewFromFloat(87.08)},
}

// viewsService implements the ViewsService interface
type viewsService struct {
	BaseService
	cfg    *config.Config
	market portssvc.MarketDataSvc
}

// NewViewsService creates a new views service backed by the given market
// data gateway.
func NewViewsService(cfg *config.Config, market portssvc.MarketDataSvc) portssvc.ViewsService {
	return &viewsService{cfg: cfg, market: market}
}

var _ portssvc.ViewsService = (*viewsService)(nil)

// MainPage builds the "main page" dashboard document for the given
// timestamp. A missing API key is the one configuration problem that is
// surfaced as an error rather than folded into the document.
func (s *viewsService) MainPage(ctx context.Context, timestamp time.Time) (*dto.MainPageResponse, error) {
	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API_KEY is not set in the environment", apperrors.ErrValidation)
	}

	cards := demoCards()
	for i := range cards {
		cards[i].Cashback = calculateCashback(cards[i].TotalSpent)
	}

	return &dto.MainPageResponse{
		Greeting:        greetingFor(timestamp),
		Cards:           cards,
		TopTransactions: demoTopTransactions(),
		CurrencyRates:   s.currencyRates(ctx),
		StockPrices:     s.stockPrices(ctx),
	}, nil
}

// EventsPage builds the "events page" dashboard document for the window
// ending at date. All failures are mapped to documents carrying a distinct
// error message; the method itself never fails.
func (s *viewsService) EventsPage(ctx context.Context, ledger []domain.TransactionRecord, date time.Time, rangeOption string) *dto.EventsPageResponse {
	if len(ledger) == 0 {
		s.LogWarn(ctx, "Events page requested with an empty ledger")
		return &dto.EventsPageResponse{Error: errMsgEmptyLedger}
	}

	start, end, ok := resolveRange(date, rangeOption)
	if !ok {
		s.LogWarn(ctx, "Invalid range option provided", slog.String("range", rangeOption))
		return &dto.EventsPageResponse{Error: errMsgInvalidRange}
	}

	if s.cfg.APIKey == "" {
		s.LogError(ctx, apperrors.ErrValidation, "API key missing for events page")
		return &dto.EventsPageResponse{Error: errMsgMissingKey}
	}

	filtered := make([]domain.TransactionRecord, 0, len(ledger))
	for _, txn := range ledger {
		if inWindow(txn.Date, start, end) {
			filtered = append(filtered, txn)
		}
	}

	resp := &dto.EventsPageResponse{
		Expenses:      calculateExpenses(filtered),
		Income:        calculateIncome(filtered),
		CurrencyRates: s.currencyRates(ctx),
		StockPrices:   s.stockPrices(ctx),
	}

	s.LogInfo(ctx, "Events page assembled",
		slog.String("range", rangeOption),
		slog.Int("transactions", len(filtered)))
	return resp
}

// currencyRates fetches a fresh snapshot, falling back to static rates when
// the gateway fails so a dashboard is never blocked on the external service.
func (s *viewsService) currencyRates(ctx context.Context) []dto.CurrencyRate {
	snapshot, err := s.market.GetCurrencyRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Currency rate fetch failed, using fallback rates")
		return fallbackRates
	}

	codes := make([]string, 0, len(snapshot))
	for code := range snapshot {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rates := make([]dto.CurrencyRate, 0, len(codes))
	for _, code := range codes {
		rates = append(rates, dto.CurrencyRate{Currency: code, Rate: snapshot[code]})
	}
	return rates
}

// stockPrices fetches quotes for the configured symbol; failures degrade to
// an empty list.
func (s *viewsService) stockPrices(ctx context.Context) []dto.StockPrice {
	snapshot, err := s.market.GetStockPrice(ctx, s.cfg.APIKey, s.cfg.StockSymbol)
	if err != nil {
		s.LogError(ctx, err, "Stock price fetch failed", slog.String("symbol", s.cfg.StockSymbol))
		return []dto.StockPrice{}
	}

	symbols := make([]string, 0, len(snapshot))
	for symbol := range snapshot {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	prices := make([]dto.StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		prices = append(prices, dto.StockPrice{Stock: symbol, Price: snapshot[symbol]})
	}
	return prices
}

// greetingFor bands the hour of day into the four fixed greetings.
func greetingFor(timestamp time.Time) string {
	hour := timestamp.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Доброе утро!"
	case hour >= 12 && hour < 18:
		return "Добрый день!"
	case hour >= 18:
		return "Добрый вечер!"
	default:
		return "Доброй ночи"
	}
}

// calculateCashback is the fixed 1% card cashback estimate.
func calculateCashback(totalSpent decimal.Decimal) decimal.Decimal {
	return totalSpent.Div(decimal.NewFromInt(100))
}

// resolveRange maps a range option onto [start, end] around date:
// week = Monday..Sunday containing date, month = 1st..date,
// year = Jan 1..date, all = unbounded start..date.
func resolveRange(date time.Time, rangeOption string) (start, end time.Time, ok bool) {
	switch rangeOption {
	case RangeWeek:
		start = date.AddDate(0, 0, -mondayIndexed(date.Weekday()))
		return start, start.AddDate(0, 0, 6), true
	case RangeMonth:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()), date, true
	case RangeYear:
		return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location()), date, true
	case RangeAll:
		return time.Time{}, date, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// calculateExpenses rolls up the expense side: total, top categories plus a
// remainder bucket, and the transfers-and-cash section.
func calculateExpenses(ledger []domain.TransactionRecord) *dto.ExpenseSummary {
	byCategory := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, txn := range ledger {
		if !txn.IsExpense() {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	main := topCategories(byCategory, topCategoryCount)

	topTotal := decimal.Zero
	for _, row := range main {
		topTotal = topTotal.Add(row.Amount)
	}
	if remainder := total.Sub(topTotal); remainder.IsPositive() {
		main = append(main, dto.CategoryAmount{Category: remainderBucket, Amount: remainder})
	}

	transfersAndCash := make([]dto.CategoryAmount, 0, 2)
	for _, category := range []string{domain.CashCategory, domain.TransferCategory} {
		if amount, found := byCategory[category]; found {
			transfersAndCash = append(transfersAndCash, dto.CategoryAmount{Category: category, Amount: amount})
		}
	}

	return &dto.ExpenseSummary{
		TotalAmount:      total.Round(0),
		Main:             main,
		TransfersAndCash: transfersAndCash,
	}
}

// calculateIncome rolls up the income side: total and top categories, with
// no remainder bucket.
func calculateIncome(ledger []domain.TransactionRecord) *dto.IncomeSummary {
	byCategory := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, txn := range ledger {
		if txn.IsExpense() {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	return &dto.IncomeSummary{
		TotalAmount: total.Round(0),
		Main:        topCategories(byCategory, topCategoryCount),
	}
}

// topCategories returns the n largest categories by total, largest first.
// Ties break alphabetically so output is deterministic.
func topCategories(byCategory map[string]decimal.Decimal, n int) []dto.CategoryAmount {
	rows := make([]dto.CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		rows = append(rows, dto.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Category < rows[j].Category
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// demoCards is the fixed card set shown on the main page.
func demoCards() []dto.CardBalance {
	return []dto.CardBalance{
		{LastDigits: "5814", TotalSpent: decimal.NewFromFloat(1262.00)},
		{LastDigits: "7512", TotalSpent: decimal.NewFromFloat(7.94)},
	}
}

// demoTopTransactions is the fixed highlight list shown on the main page.
func demoTopTransactions() []dto.TopTransaction {
	return []dto.TopTransaction{
		{Date: "21.12.2021", Amount: decimal.NewFromFloat(1198.23), Category: "Переводы", Description: "Перевод Кредитная карта. ТП 10.2 RUR"},
		{Date: "20.12.2021", Amount: decimal.NewFromFloat(829.00), Category: "Супермаркеты", Description: "Лента"},
		{Date: "20.12.2021", Amount: decimal.NewFromFloat(421.00), Category: "Различные товары", Description: "Ozon.ru"},
		{Date: "16.12.2021", Amount: decimal.NewFromFloat(-14216.42), Category: "ЖКХ", Description: "ЖКУ Квартира"},
		{Date: "16.12.2021", Amount: decimal.NewFromFloat(453.00), Category: "Бонусы", Description: "Кешбэк за обычные покупки"},
	}
}
