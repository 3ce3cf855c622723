package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

const (
	AccountsFile = "accounts.txt"
	EntriesFile  = "transactions.txt"
)

// Observer receives persistence outcomes. Implementations must be safe for
// concurrent use.
type Observer interface {
	EntriesPersisted(n int)
	PersistenceFailed(op string)
}

// Config configures a Gateway.
type Config struct {
	Dir        string
	QueueSize  int
	MaxRetries int
}

// Gateway persists accounts and entries as pipe-delimited text files.
// Entries handed to RecordEntry are appended by a background writer; the
// gateway never writes the same entry identifier twice.
type Gateway struct {
	accountsPath string
	entriesPath  string

	queue   chan domain.Entry
	dropped atomic.Int64

	mu      sync.Mutex
	written map[string]struct{}

	retrier  *Retrier
	observer Observer
	logger   zerolog.Logger
}

// NewGateway creates a gateway rooted at cfg.Dir, creating the directory if needed.
func NewGateway(cfg Config, observer Observer, logger zerolog.Logger) (*Gateway, error) {
	if cfg.Dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}

	logger = logger.With().Str("component", "file_gateway").Logger()

	return &Gateway{
		accountsPath: filepath.Join(cfg.Dir, AccountsFile),
		entriesPath:  filepath.Join(cfg.Dir, EntriesFile),
		queue:        make(chan domain.Entry, cfg.QueueSize),
		written:      make(map[string]struct{}),
		retrier:      NewRetrier(cfg.MaxRetries, logger),
		observer:     observer,
		logger:       logger,
	}, nil
}

// RecordEntry hands entry to the background writer without blocking. When the
// queue is full the entry is left for the next explicit flush.
func (g *Gateway) RecordEntry(entry domain.Entry) {
	select {
	case g.queue <- entry:
	default:
		g.dropped.Add(1)
		g.logger.Debug().Str("entry_id", entry.ID).Msg("persistence queue full, deferring entry to flush")
	}
}

// Deferred returns how many entries RecordEntry could not enqueue.
func (g *Gateway) Deferred() int64 {
	return g.dropped.Load()
}

// Run appends queued entries until ctx is done, then drains the queue.
func (g *Gateway) Run(ctx context.Context) {
	g.logger.Info().Msg("persistence writer started")
	defer g.logger.Info().Msg("persistence writer stopped")

	for {
		select {
		case <-ctx.Done():
			g.drain()
			return
		case entry := <-g.queue:
			batch := g.collect(entry)
			if _, err := g.FlushEntries(context.WithoutCancel(ctx), batch); err != nil {
				g.logger.Error().Err(err).Int("entries", len(batch)).Msg("background append failed")
			}
		}
	}
}

// collect gathers first plus whatever is already queued.
func (g *Gateway) collect(first domain.Entry) []domain.Entry {
	batch := []domain.Entry{first}
	for {
		select {
		case e := <-g.queue:
			batch = append(batch, e)
		default:
			return batch
		}
	}
}

func (g *Gateway) drain() {
	var batch []domain.Entry
	for {
		select {
		case e := <-g.queue:
			batch = append(batch, e)
		default:
			if len(batch) == 0 {
				return
			}
			if _, err := g.FlushEntries(context.Background(), batch); err != nil {
				g.logger.Error().Err(err).Int("entries", len(batch)).Msg("final append failed")
			}
			return
		}
	}
}

// FlushEntries appends every entry not already written and returns how many
// lines were appended. Re-flushing an entry is a no-op.
func (g *Gateway) FlushEntries(ctx context.Context, entries []domain.Entry) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var (
		sb  strings.Builder
		ids []string
	)
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := g.written[e.ID]; ok {
			continue
		}
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		sb.WriteString(EncodeEntry(e))
		sb.WriteByte('\n')
		ids = append(ids, e.ID)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	err := g.retrier.Retry(ctx, func() error {
		return appendFile(g.entriesPath, sb.String())
	})
	if err != nil {
		g.fail("append_entries")
		return 0, fmt.Errorf("append entries: %w", err)
	}

	for _, id := range ids {
		g.written[id] = struct{}{}
	}
	if g.observer != nil {
		g.observer.EntriesPersisted(len(ids))
	}

	g.logger.Debug().Int("entries", len(ids)).Msg("entries appended")
	return len(ids), nil
}

// SaveAccounts atomically replaces the accounts file with records.
func (g *Gateway) SaveAccounts(ctx context.Context, records []usecase.AccountRecord) error {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(EncodeAccount(r))
		sb.WriteByte('\n')
	}

	err := g.retrier.Retry(ctx, func() error {
		return replaceFile(g.accountsPath, sb.String())
	})
	if err != nil {
		g.fail("save_accounts")
		return fmt.Errorf("save accounts: %w", err)
	}

	g.logger.Debug().Int("accounts", len(records)).Msg("accounts saved")
	return nil
}

// LoadAccounts reads the accounts file. A missing file yields no records.
// Malformed lines are logged and skipped.
func (g *Gateway) LoadAccounts(ctx context.Context) ([]usecase.AccountRecord, error) {
	var records []usecase.AccountRecord
	err := g.scan(ctx, g.accountsPath, func(n int, line string) {
		r, err := DecodeAccount(line)
		if err != nil {
			g.logger.Warn().Err(err).Int("line", n).Msg("skipping invalid account")
			return
		}
		records = append(records, r)
	})
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return records, nil
}

// LoadEntries reads the entries file, skipping duplicate identifiers and
// malformed lines. Loaded entries are remembered as already written.
func (g *Gateway) LoadEntries(ctx context.Context) ([]domain.Entry, usecase.LoadStats, error) {
	var (
		entries []domain.Entry
		stats   usecase.LoadStats
	)
	seen := make(map[string]struct{})

	err := g.scan(ctx, g.entriesPath, func(n int, line string) {
		e, err := DecodeEntry(line)
		if err != nil {
			stats.Malformed++
			g.logger.Warn().Err(err).Int("line", n).Msg("skipping invalid entry")
			return
		}
		if _, ok := seen[e.ID]; ok {
			stats.Duplicates++
			return
		}
		seen[e.ID] = struct{}{}
		entries = append(entries, e)
	})
	if err != nil {
		return nil, stats, fmt.Errorf("load entries: %w", err)
	}

	g.mu.Lock()
	for id := range seen {
		g.written[id] = struct{}{}
	}
	g.mu.Unlock()

	stats.Loaded = len(entries)
	g.logger.Info().
		Int("loaded", stats.Loaded).
		Int("duplicates", stats.Duplicates).
		Int("malformed", stats.Malformed).
		Msg("entries loaded")

	return entries, stats, nil
}

func (g *Gateway) scan(ctx context.Context, path string, fn func(n int, line string)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	n := 0
	for s.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		fn(n, line)
	}
	return s.Err()
}

func (g *Gateway) fail(op string) {
	if g.observer != nil {
		g.observer.PersistenceFailed(op)
	}
}

func appendFile(path, data string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	if err := writeOrTruncate(f, info.Size(), data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type truncatingWriter interface {
	WriteString(s string) (int, error)
	Truncate(size int64) error
}

// writeOrTruncate writes data and, if the write fails part way, cuts the file
// back to size so a retried batch does not follow a torn line.
func writeOrTruncate(w truncatingWriter, size int64, data string) error {
	n, err := w.WriteString(data)
	if err == nil {
		return nil
	}
	if n > 0 {
		if terr := w.Truncate(size); terr != nil {
			return errors.Join(err, fmt.Errorf("truncate after partial write: %w", terr))
		}
	}
	return err
}

func replaceFile(path, data string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
