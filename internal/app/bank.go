// Package app assembles the bank from configuration: repositories, the file
// gateway and its background writer, and the use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/repository/file"
	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// ErrWriterStopped is reported by Ping once the persistence writer has exited.
var ErrWriterStopped = errors.New("persistence writer is not running")

// Bank holds the wired components of one process.
type Bank struct {
	Accounts *memory.AccountRepository
	Ledger   *memory.LedgerRepository
	Gateway  *file.Gateway
	Metrics  *metrics.Metrics

	AccountUC     *usecase.AccountUseCase
	TransferUC    *usecase.TransferUseCase
	EntryUC       *usecase.EntryUseCase
	LedgerUC      *usecase.LedgerUseCase
	PersistenceUC *usecase.PersistenceUseCase
	SimulationUC  *usecase.SimulationUseCase

	logger zerolog.Logger

	mu      sync.Mutex
	stop    context.CancelFunc
	stopped chan struct{}
}

// New wires a bank. reg may be nil, in which case no metrics are collected.
func New(cfg *config.Config, reg prometheus.Registerer, logger zerolog.Logger) (*Bank, error) {
	var m *metrics.Metrics
	var observer file.Observer
	if reg != nil {
		m = metrics.New(reg)
		observer = m
	}

	gateway, err := file.NewGateway(file.Config{
		Dir:        cfg.DataDir,
		QueueSize:  cfg.PersistQueueSize,
		MaxRetries: cfg.PersistMaxRetries,
	}, observer, logger)
	if err != nil {
		return nil, fmt.Errorf("create file gateway: %w", err)
	}

	accounts := memory.NewAccountRepository()
	ledger := memory.NewLedgerRepository(gateway)
	policies := cfg.Policies()

	return &Bank{
		Accounts: accounts,
		Ledger:   ledger,
		Gateway:  gateway,
		Metrics:  m,

		AccountUC:     usecase.NewAccountUseCase(accounts, ledger, policies, m, logger),
		TransferUC:    usecase.NewTransferUseCase(accounts, memory.NewTransferRepository(), memory.NewULIDGenerator(), m, logger),
		EntryUC:       usecase.NewEntryUseCase(ledger, accounts),
		LedgerUC:      usecase.NewLedgerUseCase(accounts, ledger),
		PersistenceUC: usecase.NewPersistenceUseCase(accounts, ledger, gateway, policies, logger),
		SimulationUC:  usecase.NewSimulationUseCase(accounts, m, logger),

		logger: logger,
	}, nil
}

// Start loads stored state and then starts the background writer. Entries
// recorded before Start are picked up by the shutdown flush.
func (b *Bank) Start(ctx context.Context) (*usecase.LoadResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stop != nil {
		return nil, errors.New("bank already started")
	}

	result, err := b.PersistenceUC.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.stop = cancel
	b.stopped = make(chan struct{})

	go func() {
		defer close(b.stopped)
		b.Gateway.Run(runCtx)
	}()

	return result, nil
}

// Shutdown stops the background writer, waits for it to drain and flushes
// every pending entry and account. It is safe to call more than once.
func (b *Bank) Shutdown(ctx context.Context) (*usecase.FlushResult, error) {
	b.mu.Lock()
	stop, stopped := b.stop, b.stopped
	b.mu.Unlock()

	if stop != nil {
		stop()
		select {
		case <-stopped:
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for persistence writer: %w", ctx.Err())
		}
	}

	result, err := b.PersistenceUC.Flush(ctx)
	if err != nil {
		return result, err
	}

	if deferred := b.Gateway.Deferred(); deferred > 0 {
		b.logger.Info().Int64("entries", deferred).Msg("entries deferred by a full queue were written at shutdown")
	}
	return result, nil
}

// Ping reports whether the background writer is running.
func (b *Bank) Ping(context.Context) error {
	b.mu.Lock()
	stopped := b.stopped
	b.mu.Unlock()

	if stopped == nil {
		return ErrWriterStopped
	}
	select {
	case <-stopped:
		return ErrWriterStopped
	default:
		return nil
	}
}
