// Package repository provides database access layer.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdesk/staffdesk/internal/metrics"
)

// Database abstracts the pgx connection pool so tests can substitute a mock.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Repository provides database access methods.
type Repository struct {
	db      Database
	pool    *pgxpool.Pool
	metrics metrics.Recorder
}

// New creates a new Repository with a connection pool.
func New(ctx context.Context, databaseURL string, recorder metrics.Recorder) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return &Repository{db: pool, pool: pool, metrics: recorder}, nil
}

// NewWithDB creates a Repository over an existing Database.
// Used by tests to inject a mock pool.
func NewWithDB(db Database, recorder metrics.Recorder) *Repository {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Repository{db: db, metrics: recorder}
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close closes the database connection pool, if the Repository owns one.
func (r *Repository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
