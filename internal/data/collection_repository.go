package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CollectionRepository persists whole collections as opaque JSON documents keyed by name.
type CollectionRepository interface {
	// Get returns the stored payload, or nil when nothing is stored under name.
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, payload []byte) error
	Delete(ctx context.Context, name string) error
}

// SQLCollectionRepository is a CollectionRepository backed by the collections table.
type SQLCollectionRepository struct {
	db *sqlx.DB
}

// NewSQLCollectionRepository creates a new SQLCollectionRepository.
func NewSQLCollectionRepository(db *sqlx.DB) *SQLCollectionRepository {
	return &SQLCollectionRepository{db: db}
}

// Get retrieves the payload stored under name.
func (r *SQLCollectionRepository) Get(ctx context.Context, name string) ([]byte, error) {
	var payload string
	query := `SELECT payload FROM collections WHERE name = ?`
	if err := r.db.GetContext(ctx, &payload, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found is not an error
		}
		return nil, fmt.Errorf("failed to get collection %q: %w", name, err)
	}
	return []byte(payload), nil
}

// Put replaces the payload stored under name.
func (r *SQLCollectionRepository) Put(ctx context.Context, name string, payload []byte) error {
	// REPLACE INTO is understood by both SQLite and MySQL.
	query := `REPLACE INTO collections (name, payload) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, name, string(payload)); err != nil {
		return fmt.Errorf("failed to put collection %q: %w", name, err)
	}
	return nil
}

// Delete removes the payload stored under name. Missing names are ignored.
func (r *SQLCollectionRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM collections WHERE name = ?`
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", name, err)
	}
	return nil
}
