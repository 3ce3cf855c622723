package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCompleted   prometheus.Counter
	TransfersCompensated prometheus.Counter
	TransferDuration     prometheus.Histogram
	TransferAmount       prometheus.Histogram
	TransferErrors       *prometheus.CounterVec

	// Account metrics
	AccountsOpened    prometheus.Counter
	AccountsClosed    prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Ledger metrics
	LedgerEntries prometheus.Gauge

	// Persistence metrics
	EntriesPersistedTotal prometheus.Counter
	PersistenceErrors     *prometheus.CounterVec

	// Simulation metrics
	SimulationOperations *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransfersCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_transfers_completed_total",
			Help: "Total number of completed transfers",
		}),
		TransfersCompensated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_transfers_compensated_total",
			Help: "Total number of transfers rolled back by a reversal",
		}),
		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		TransferErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		AccountsClosed: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_closed_total",
			Help: "Total number of accounts closed",
		}),
		AccountOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_account_operations_total",
				Help: "Total account operations by type and outcome",
			},
			[]string{"operation", "outcome"},
		),

		LedgerEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gobank_ledger_entries",
			Help: "Number of entries held in the ledger",
		}),

		EntriesPersistedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_entries_persisted_total",
			Help: "Total number of entries appended to the entries file",
		}),
		PersistenceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_persistence_errors_total",
				Help: "Total persistence failures by operation",
			},
			[]string{"operation"},
		),

		SimulationOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_simulation_operations_total",
				Help: "Operations performed by concurrency simulations",
			},
			[]string{"outcome"},
		),
	}
}

// EntriesPersisted records n entries written to disk.
func (m *Metrics) EntriesPersisted(n int) {
	m.EntriesPersistedTotal.Add(float64(n))
}

// PersistenceFailed records a failed persistence operation.
func (m *Metrics) PersistenceFailed(op string) {
	m.PersistenceErrors.WithLabelValues(op).Inc()
}
