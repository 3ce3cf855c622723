package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// SimulationUseCase runs concurrent deposit and withdrawal workers against
// one account to demonstrate that no update is lost.
type SimulationUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewSimulationUseCase creates a new SimulationUseCase. m may be nil.
func NewSimulationUseCase(accountRepo AccountRepository, m *metrics.Metrics, logger zerolog.Logger) *SimulationUseCase {
	return &SimulationUseCase{
		accountRepo: accountRepo,
		metrics:     m,
		logger:      logger.With().Str("component", "simulation").Logger(),
	}
}

// SimulationInput configures a run. Each of Workers goroutines performs
// Rounds deposit-then-withdraw pairs of Amount.
type SimulationInput struct {
	AccountNumber string
	Workers       int
	Rounds        int
	Amount        decimal.Decimal
}

// SimulationResult reports a run.
type SimulationResult struct {
	AccountNumber  string
	Workers        int
	Rounds         int
	InitialBalance decimal.Decimal
	FinalBalance   decimal.Decimal
	Deposits       int64
	Withdrawals    int64
	Failures       int64
	Duration       time.Duration
}

// Run executes the simulation and waits for every worker.
func (uc *SimulationUseCase) Run(ctx context.Context, input SimulationInput) (*SimulationResult, error) {
	if input.Workers < 1 || input.Workers > MaxSimulationWorkers {
		return nil, fmt.Errorf("workers must be between 1 and %d", MaxSimulationWorkers)
	}
	if input.Rounds < 1 {
		input.Rounds = 1
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindAccount(input.AccountNumber)
	if err != nil {
		return nil, err
	}

	result := &SimulationResult{
		AccountNumber:  account.Number(),
		Workers:        input.Workers,
		Rounds:         input.Rounds,
		InitialBalance: account.Balance(),
	}

	var wg sync.WaitGroup
	var deposits, withdrawals, failures atomic.Int64

	start := time.Now()
	wg.Add(input.Workers)
	for w := range input.Workers {
		go func() {
			defer wg.Done()
			for range input.Rounds {
				if ctx.Err() != nil {
					return
				}

				if _, err := account.Deposit(input.Amount); err != nil {
					failures.Add(1)
					uc.logger.Debug().Err(err).Int("worker", w).Msg("deposit failed")
					continue
				}
				deposits.Add(1)

				if _, err := account.Withdraw(input.Amount); err != nil {
					failures.Add(1)
					uc.logger.Debug().Err(err).Int("worker", w).Msg("withdrawal failed")
					continue
				}
				withdrawals.Add(1)
			}
		}()
	}
	wg.Wait()

	result.Duration = time.Since(start)
	result.Deposits = deposits.Load()
	result.Withdrawals = withdrawals.Load()
	result.Failures = failures.Load()
	result.FinalBalance = account.Balance()

	if uc.metrics != nil {
		uc.metrics.SimulationOperations.WithLabelValues("success").Add(float64(result.Deposits + result.Withdrawals))
		uc.metrics.SimulationOperations.WithLabelValues("failure").Add(float64(result.Failures))
	}

	uc.logger.Info().
		Str("account", result.AccountNumber).
		Int("workers", result.Workers).
		Int64("deposits", result.Deposits).
		Int64("withdrawals", result.Withdrawals).
		Int64("failures", result.Failures).
		Str("initial_balance", domain.FormatMoney(result.InitialBalance)).
		Str("final_balance", domain.FormatMoney(result.FinalBalance)).
		Dur("duration", result.Duration).
		Msg("simulation finished")

	return result, ctx.Err()
}
