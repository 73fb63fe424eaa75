package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration. The chart-of-accounts codes and
// fee amounts are explicit values here so nothing in the core reads ambient
// global state.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	SubscriptionFeeAmount decimal.Decimal

	CashCode                   string
	LoansReceivableCode        string
	CustomerDepositsCode       string
	FeeIncomeCode              string
	SubscriptionFeeIncomeCode  string
	UnappliedReceiptsCode      string
	UnappliedDisbursementsCode string
}

// Chart assembles the fixed posting targets from the configured codes.
func (c *Config) Chart() domain.ChartOfAccounts {
	return domain.ChartOfAccounts{
		Cash:                   c.CashCode,
		LoansReceivable:        c.LoansReceivableCode,
		CustomerDeposits:       c.CustomerDepositsCode,
		FeeIncome:              c.FeeIncomeCode,
		SubscriptionFeeIncome:  c.SubscriptionFeeIncomeCode,
		UnappliedReceipts:      c.UnappliedReceiptsCode,
		UnappliedDisbursements: c.UnappliedDisbursementsCode,
	}
}

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SUBSCRIPTION_FEE_AMOUNT", "10.0000")
	viper.SetDefault("LEDGER_CASH_CODE", "1000")
	viper.SetDefault("LEDGER_LOANS_RECEIVABLE_CODE", "1100")
	viper.SetDefault("LEDGER_CUSTOMER_DEPOSITS_CODE", "2000")
	viper.SetDefault("LEDGER_UNAPPLIED_RECEIPTS_CODE", "2100")
	viper.SetDefault("LEDGER_UNAPPLIED_DISBURSEMENTS_CODE", "2200")
	viper.SetDefault("LEDGER_FEE_INCOME_CODE", "4000")
	viper.SetDefault("LEDGER_SUBSCRIPTION_FEE_INCOME_CODE", "4100")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	feeAmount, err := decimal.NewFromString(viper.GetString("SUBSCRIPTION_FEE_AMOUNT"))
	if err != nil {
		log.Printf("Warning: Invalid SUBSCRIPTION_FEE_AMOUNT (%q). Defaulting to 10.0000.\n", viper.GetString("SUBSCRIPTION_FEE_AMOUNT"))
		feeAmount = decimal.RequireFromString("10.0000")
	}
	cfg.SubscriptionFeeAmount = feeAmount

	cfg.CashCode = viper.GetString("LEDGER_CASH_CODE")
	cfg.LoansReceivableCode = viper.GetString("LEDGER_LOANS_RECEIVABLE_CODE")
	cfg.CustomerDepositsCode = viper.GetString("LEDGER_CUSTOMER_DEPOSITS_CODE")
	cfg.UnappliedReceiptsCode = viper.GetString("LEDGER_UNAPPLIED_RECEIPTS_CODE")
	cfg.UnappliedDisbursementsCode = viper.GetString("LEDGER_UNAPPLIED_DISBURSEMENTS_CODE")
	cfg.FeeIncomeCode = viper.GetString("LEDGER_FEE_INCOME_CODE")
	cfg.SubscriptionFeeIncomeCode = viper.GetString("LEDGER_SUBSCRIPTION_FEE_INCOME_CODE")

	return cfg, nil
}
