package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	DataDir           string `env:"DATA_DIR"            envDefault:"data"`
	PersistQueueSize  int    `env:"PERSIST_QUEUE_SIZE"  envDefault:"1024"`
	PersistMaxRetries int    `env:"PERSIST_MAX_RETRIES" envDefault:"3"`

	// Redis (optional - leave empty to disable idempotency keys)
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Per-client rate limiting (0 disables)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Account policies, copied into each account when it is opened
	SavingsMinimumBalance  decimal.Decimal `env:"SAVINGS_MINIMUM_BALANCE"  envDefault:"500.00"`
	SavingsInterestRate    decimal.Decimal `env:"SAVINGS_INTEREST_RATE"    envDefault:"0.035"`
	CheckingOverdraftLimit decimal.Decimal `env:"CHECKING_OVERDRAFT_LIMIT" envDefault:"1000.00"`
	CheckingMonthlyFee     decimal.Decimal `env:"CHECKING_MONTHLY_FEE"     envDefault:"10.00"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.PersistQueueSize < 1 {
		return fmt.Errorf("PERSIST_QUEUE_SIZE must be positive, got %d", c.PersistQueueSize)
	}
	if c.RateLimitRPS < 0 || (c.RateLimitRPS > 0 && c.RateLimitBurst < 1) {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative and RATE_LIMIT_BURST must be positive when limiting")
	}
	for name, v := range map[string]decimal.Decimal{
		"SAVINGS_MINIMUM_BALANCE":  c.SavingsMinimumBalance,
		"SAVINGS_INTEREST_RATE":    c.SavingsInterestRate,
		"CHECKING_OVERDRAFT_LIMIT": c.CheckingOverdraftLimit,
		"CHECKING_MONTHLY_FEE":     c.CheckingMonthlyFee,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", name, v)
		}
	}
	return nil
}

// Policies returns the account policies described by the configuration.
func (c *Config) Policies() usecase.Policies {
	return usecase.Policies{
		Savings: domain.Policy{
			MinimumBalance: c.SavingsMinimumBalance,
			InterestRate:   c.SavingsInterestRate,
		},
		Checking: domain.Policy{
			OverdraftLimit: c.CheckingOverdraftLimit,
			MonthlyFee:     c.CheckingMonthlyFee,
		},
	}
}
