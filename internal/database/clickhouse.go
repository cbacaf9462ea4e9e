package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"urlshortener/internal/types"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	clickmigrations "github.com/golang-migrate/migrate/v4/database/clickhouse"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/clickhouse/*.sql
var migrationsClickHouseFS embed.FS

const (
	defaultBufferSize    = 1000
	defaultBatchSize     = 100
	defaultFlushInterval = 5 * time.Second
)

var ErrBufferFull = errors.New("analytics buffer full")

type Analytics struct {
	db            *sql.DB
	logger        *slog.Logger
	clicksBuffer  chan types.Click
	batchSize     int
	flushInterval time.Duration

	startOnce sync.Once
	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
	started   atomic.Bool
}

type AnalyticsOptions struct {
	BufferSize    int
	BatchSize     int
	FlushInterval time.Duration
}

func ConnectClickHouse(ctx context.Context, addr, user, pass, dbName string, logger *slog.Logger) (*Analytics, error) {
	conn := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: dbName,
			Username: user,
			Password: pass,
		},
		DialTimeout: time.Second * 30,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	a := NewAnalytics(conn, logger, AnalyticsOptions{})

	if err := a.runMigrations(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return a, nil
}

func NewAnalytics(db *sql.DB, logger *slog.Logger, opts AnalyticsOptions) *Analytics {
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = defaultFlushInterval
	}
	return &Analytics{
		db:            db,
		logger:        logger,
		clicksBuffer:  make(chan types.Click, opts.BufferSize),
		batchSize:     opts.BatchSize,
		flushInterval: opts.FlushInterval,
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

func (a *Analytics) runMigrations() error {
	d, err := iofs.New(migrationsClickHouseFS, "migrations/clickhouse")
	if err != nil {
		return err
	}

	driver, err := clickmigrations.WithInstance(a.db, &clickmigrations.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		"clickhouse", driver,
	)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	a.logger.Info("ClickHouse migrations applied successfully")
	return nil
}

// Start launches the batching worker. It stops on ctx cancellation or Close,
// flushing whatever is buffered.
func (a *Analytics) Start(ctx context.Context) {
	a.startOnce.Do(func() {
		a.started.Store(true)
		go a.worker(ctx)
	})
}

func (a *Analytics) worker(ctx context.Context) {
	defer close(a.done)

	var buffer []types.Click
	ticker := time.NewTicker(a.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		if err := a.recordClicks(buffer); err != nil {
			a.logger.Warn("RecordClicks error", "error", err, "clicks", len(buffer))
		}
		buffer = nil
	}

	for {
		select {
		case data := <-a.clicksBuffer:
			buffer = append(buffer, data)
			if len(buffer) >= a.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			buffer = a.drain(buffer)
			flush()
			return
		case <-a.quit:
			buffer = a.drain(buffer)
			flush()
			return
		}
	}
}

func (a *Analytics) drain(buffer []types.Click) []types.Click {
	for {
		select {
		case data := <-a.clicksBuffer:
			buffer = append(buffer, data)
		default:
			return buffer
		}
	}
}

func (a *Analytics) Close() error {
	a.closeOnce.Do(func() {
		close(a.quit)
	})
	if a.started.Load() {
		<-a.done
	}
	return a.db.Close()
}

func (a *Analytics) recordClicks(clicks []types.Click) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO clicks (hash, created, referrer, browser, os, ip, country) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, c := range clicks {
		_, err = stmt.Exec(c.Hash, c.Created, c.Referrer, c.Browser, c.OS, c.IP, c.Country)
		if err != nil {
			a.logger.Error("failed to exec insert for click", "error", err, "hash", c.Hash)
			continue
		}
	}
	return tx.Commit()
}

// SaveClick queues a click for the next batch. It never blocks the caller.
func (a *Analytics) SaveClick(_ context.Context, c types.Click) error {
	select {
	case a.clicksBuffer <- c:
		return nil
	default:
		a.logger.Warn("Analytics buffer full, dropping click data", "hash", c.Hash)
		return ErrBufferFull
	}
}

func (a *Analytics) CountClicks(ctx context.Context, hash string) (int64, error) {
	var n uint64
	if err := a.db.QueryRowContext(ctx, "SELECT count() FROM clicks WHERE hash = ?", hash).Scan(&n); err != nil {
		return 0, err
	}
	return int64(n), nil
}
