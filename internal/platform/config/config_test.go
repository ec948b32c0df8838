package config_test

import (
	"testing"

	"github.com/finsight/spending_insights_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data/transactions.csv", cfg.LedgerCSVPath)
	assert.Equal(t, "AAPL", cfg.StockSymbol)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest/USD", cfg.RatesAPIURL)
	assert.Equal(t, "https://www.alphavantage.co/query", cfg.QuoteAPIURL)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STOCK_SYMBOL", "MSFT")
	t.Setenv("API_KEY", "secret")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "MSFT", cfg.StockSymbol)
	assert.Equal(t, "secret", cfg.APIKey)
}
