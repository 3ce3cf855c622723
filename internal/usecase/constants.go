package usecase

import "time"

const (
	// DefaultFlushTimeout bounds a shutdown flush of the persistence gateway.
	DefaultFlushTimeout = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// MaxSimulationWorkers caps the goroutines a single simulation may start.
	MaxSimulationWorkers = 1000
)
