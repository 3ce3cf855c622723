package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/usecase"
)

// RouterConfig holds dependencies for the router. Optional fields may be nil.
type RouterConfig struct {
	AccountHandler  *handler.AccountHandler
	TransferHandler *handler.TransferHandler
	EntryHandler    *handler.EntryHandler
	LedgerHandler   *handler.LedgerHandler
	HealthHandler   *handler.HealthHandler

	Logger zerolog.Logger
	// OnFatal is called when a handler panics with domain.ErrInvariantViolation.
	OnFatal func(error)

	Gatherer    prometheus.Gatherer
	HTTPMetrics *middleware.HTTPMetrics
	RateLimiter *middleware.RateLimiter

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger, cfg.OnFatal))
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			ttl := cfg.IdempotencyTTL
			if ttl <= 0 {
				ttl = 24 * time.Hour
			}
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, ttl, cfg.Logger).Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)

			r.Route("/{number}", func(r chi.Router) {
				r.Get("/", cfg.AccountHandler.Get)
				r.Post("/deposit", cfg.AccountHandler.Deposit)
				r.Post("/withdraw", cfg.AccountHandler.Withdraw)
				r.Post("/close", cfg.AccountHandler.Close)
				r.Post("/fee", cfg.AccountHandler.ApplyFee)
				r.Get("/interest", cfg.AccountHandler.Interest)
				r.Get("/entries", cfg.EntryHandler.ListByAccount)
				r.Get("/statement", cfg.EntryHandler.Statement)
				r.Get("/transfers", cfg.TransferHandler.ListByAccount)
				r.Get("/reconcile", cfg.LedgerHandler.ReconcileAccount)
			})
		})

		r.Get("/customers", cfg.AccountHandler.Customers)
		r.Get("/summary", cfg.AccountHandler.Summary)
		r.Post("/fees", cfg.AccountHandler.ApplyFees)
		r.Get("/entries", cfg.EntryHandler.List)
		r.Get("/ledger/reconcile", cfg.LedgerHandler.Reconcile)

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
			r.Get("/{id}", cfg.TransferHandler.Get)
		})
	})

	return r
}
