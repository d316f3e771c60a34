package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store owns the single database handle. It is created by the caller at
// startup and closed at shutdown.
type Store struct {
	db         *sqlx.DB
	driver     string
	bcryptCost int
}

type Option func(*Store)

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Store) { s.bcryptCost = cost }
}

// Open connects to the store. For SQLite dsn is a file path; its directory is
// created when missing.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Store, error) {
	if driver == DriverSQLite {
		if dir := filepath.Dir(dsn); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create store directory: %w: %w", ErrStoreUnavailable, err)
			}
		}
	}

	source := dsn
	if driver == DriverSQLite && !strings.Contains(dsn, "?") {
		// Applied by the driver to every new connection in the pool.
		source = dsn + "?_pragma=foreign_keys(1)"
	}

	db, err := sqlx.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w: %w", driver, ErrStoreUnavailable, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s store: %w: %w", driver, ErrStoreUnavailable, err)
	}
	if driver == DriverSQLite {
		var enabled int
		if err := db.GetContext(ctx, &enabled, "PRAGMA foreign_keys"); err != nil {
			db.Close()
			return nil, fmt.Errorf("check foreign keys: %w: %w", ErrStoreUnavailable, err)
		}
		if enabled != 1 {
			db.Close()
			return nil, fmt.Errorf("foreign keys disabled for %s: %w", dsn, ErrStoreUnavailable)
		}
	}

	return New(db, driver, opts...), nil
}

// New wraps an existing handle, e.g. one backed by sqlmock.
func New(db *sqlx.DB, driver string, opts ...Option) *Store {
	s := &Store{db: db, driver: driver, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Driver() string {
	return s.driver
}
