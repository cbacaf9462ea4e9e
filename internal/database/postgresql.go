package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"urlshortener/internal/types"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const shortURLColumns = "hash, target, uri, sponsor, created, owner, mode, safe, ip, country, expires_at"

type Database struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func ConnectPostgres(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, err
	}

	pg := NewDatabase(db, logger)

	if err := pg.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return pg, nil
}

func NewDatabase(db *sqlx.DB, logger *slog.Logger) *Database {
	return &Database{db: db, logger: logger}
}

func (db *Database) RunMigrations() error {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db.db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		"postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	db.logger.Info("Database migrations applied successfully")
	return nil
}

func (db *Database) FindByKey(ctx context.Context, hash string) (*types.ShortURL, error) {
	var s types.ShortURL
	err := db.db.GetContext(ctx, &s, "SELECT "+shortURLColumns+" FROM short_urls WHERE hash = $1", hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find short url %s: %w", hash, err)
	}
	return &s, nil
}

func (db *Database) Save(ctx context.Context, s *types.ShortURL) (*types.ShortURL, error) {
	_, err := db.db.NamedExecContext(ctx, `INSERT INTO short_urls (`+shortURLColumns+`)
		VALUES (:hash, :target, :uri, :sponsor, :created, :owner, :mode, :safe, :ip, :country, :expires_at)`, s)
	if err != nil {
		return nil, fmt.Errorf("save short url %s: %w", s.Hash, err)
	}
	return s, nil
}

func (db *Database) Update(ctx context.Context, s *types.ShortURL) (*types.ShortURL, error) {
	res, err := db.db.NamedExecContext(ctx, `UPDATE short_urls SET
		target = :target, uri = :uri, sponsor = :sponsor, owner = :owner, mode = :mode,
		safe = :safe, ip = :ip, country = :country, expires_at = :expires_at
		WHERE hash = :hash`, s)
	if err != nil {
		return nil, fmt.Errorf("update short url %s: %w", s.Hash, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update short url %s: %w", s.Hash, err)
	}
	if n == 0 {
		return nil, types.ErrNotFound
	}
	return s, nil
}

func (db *Database) ListAll(ctx context.Context) ([]types.ShortURL, error) {
	var all []types.ShortURL
	if err := db.db.SelectContext(ctx, &all, "SELECT "+shortURLColumns+" FROM short_urls ORDER BY created"); err != nil {
		return nil, fmt.Errorf("list short urls: %w", err)
	}
	return all, nil
}

func (db *Database) Close() error {
	return db.db.Close()
}
