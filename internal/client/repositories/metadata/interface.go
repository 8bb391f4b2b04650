// Package metadata is the durable key/value store behind both JobHunt stores.
//
// Every persisted record (user list, session token, catalog state) is one
// opaque value under a string key. Backends: SQLite (default), PostgreSQL
// and an in-memory map for tests and throwaway sessions.
package metadata

import (
	"context"
)

// Repository is a flat key/value table. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Transactor is implemented by repositories that can apply several writes
// atomically.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}

// InTx runs fn inside a transaction when repo supports one, otherwise
// directly against repo.
func InTx(ctx context.Context, repo Repository, fn func(ctx context.Context, repo Repository) error) error {
	if tx, ok := repo.(Transactor); ok {
		return tx.InTx(ctx, fn)
	}
	return fn(ctx, repo)
}
