// Package cache stores rendered outputs, such as the sitemap, in a local SQLite file.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edupress/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Keys of the rendered outputs kept in the cache.
const (
	KeySitemap = "sitemap.xml"
)

// Cache provides a SQLite-based cache for rendered outputs.
type Cache struct {
	db  *sqlx.DB
	now func() time.Time
}

// New opens the SQLite database at filePath and ensures the cache table exists.
// ":memory:" gives a private, non-persistent cache.
func New(filePath string) (*Cache, error) {
	db, err := sqlx.Connect("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode on sqlite cache: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS rendered (
		key TEXT PRIMARY KEY,
		body BLOB,
		expires_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_rendered_expires_at ON rendered (expires_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Cache{db: db, now: time.Now}, nil
}

// Get returns the cached body for key, or nil on a miss or an expired entry.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var item struct {
		Body      []byte `db:"body"`
		ExpiresAt int64  `db:"expires_at"`
	}
	query := `SELECT body, expires_at FROM rendered WHERE key = ?`
	if err := c.db.GetContext(ctx, &item, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // A miss is not an error.
		}
		return nil, fmt.Errorf("failed to get %q from cache: %w", key, err)
	}

	if c.now().UnixNano() >= item.ExpiresAt {
		_ = c.Delete(ctx, key)
		return nil, nil
	}
	return item.Body, nil
}

// Set stores body under key for ttl.
func (c *Cache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	expiresAt := c.now().Add(ttl).UnixNano()
	query := `INSERT OR REPLACE INTO rendered (key, body, expires_at) VALUES (?, ?, ?)`
	if _, err := c.db.ExecContext(ctx, query, key, body, expiresAt); err != nil {
		return fmt.Errorf("failed to set %q in cache: %w", key, err)
	}
	return nil
}

// Delete removes key from the cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM rendered WHERE key = ?`
	if _, err := c.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete %q from cache: %w", key, err)
	}
	return nil
}

// Purge removes every expired entry and returns how many were dropped.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM rendered WHERE expires_at <= ?`, c.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return res.RowsAffected()
}

// Sweep purges expired entries every interval until ctx is done.
func (c *Cache) Sweep(ctx context.Context, interval time.Duration, log logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := c.Purge(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Error(err, "Cache sweep failed")
				}
				continue
			}
			if n > 0 {
				log.Debug(fmt.Sprintf("Cache sweep dropped %d expired entries", n))
			}
		}
	}
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}
