package postgres

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Client owns the database handle. It is constructed once in main and passed
// to the repositories; Reset tears the pool down and reopens it, which is the
// only supported way to recover a wedged connection.
type Client struct {
	mu   sync.RWMutex
	db   *bun.DB
	url  string
	pool PoolConfig
}

func Open(databaseURL string, pool PoolConfig) (*Client, error) {
	db, err := open(databaseURL, pool)
	if err != nil {
		return nil, err
	}
	return &Client{db: db, url: databaseURL, pool: pool}, nil
}

func open(databaseURL string, pool PoolConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	if pool.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

// DB returns the current handle. Callers must not retain it across a Reset.
func (c *Client) DB() *bun.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// SQL exposes the underlying *sql.DB, needed by the migration runner.
func (c *Client) SQL() *sql.DB {
	return c.DB().DB
}

func (c *Client) Ping(ctx context.Context) error {
	return c.DB().PingContext(ctx)
}

// Reset closes the current pool and opens a fresh one with the same
// configuration.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	db, err := open(c.url, c.pool)
	if err != nil {
		return err
	}
	if c.db != nil {
		_ = c.db.Close()
	}
	c.db = db
	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
