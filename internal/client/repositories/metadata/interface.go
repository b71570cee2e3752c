// Package metadata is the local key/value store backing the persisted
// client session.
package metadata

import (
	"context"
)

// Entry is one key/value pair written by Put.
type Entry struct {
	Key   string
	Value []byte
}

type Repository interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, keys ...string) error
}
