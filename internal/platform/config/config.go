package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once at startup and
// passed into the gateway and services; nothing reads the environment after
// that point.
type Config struct {
	Port         string
	IsProduction bool

	// Ledger sources: Postgres when DatabaseURL is set, CSV otherwise.
	DatabaseURL   string
	LedgerCSVPath string

	// External market data services
	APIKey      string
	RatesAPIURL string
	QuoteAPIURL string
	StockSymbol string

	// Rate limiting, in ulule/limiter notation (e.g. "100-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("LEDGER_CSV_PATH", "./data/transactions.csv")
	viper.SetDefault("API_KEY", "")
	viper.SetDefault("RATES_API_URL", "https://api.exchangerate-api.com/v4/latest/USD")
	viper.SetDefault("QUOTE_API_URL", "https://www.alphavantage.co/query")
	viper.SetDefault("STOCK_SYMBOL", "AAPL")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.LedgerCSVPath = viper.GetString("LEDGER_CSV_PATH")
	if cfg.DatabaseURL == "" {
		log.Printf("PGSQL_URL not set, serving the ledger from %s\n", cfg.LedgerCSVPath)
	}

	cfg.APIKey = viper.GetString("API_KEY")
	if cfg.APIKey == "" {
		// Stock price lookups will be reported as configuration errors
		// on the dashboard paths, not a startup failure.
		log.Println("Warning: API_KEY environment variable not set.")
	}

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	cfg.QuoteAPIURL = viper.GetString("QUOTE_API_URL")
	cfg.StockSymbol = viper.GetString("STOCK_SYMBOL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
