// Package storage defines the preference persistence interface and its implementations.
package storage

import "context"

// Storage is a durable string key/value store for view preferences.
type Storage interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	Close() error
}
