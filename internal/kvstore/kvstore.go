// Package kvstore provides the key-value persistence contract used by the
// planner services. Each key holds a whole JSON-serialized collection.
package kvstore

import "context"

// Store persists JSON-serializable values under string keys.
type Store interface {
	// Get reads the value stored under chave into out. It returns false
	// when the key has never been written.
	Get(ctx context.Context, chave string, out interface{}) (bool, error)
	// Set replaces the value stored under chave.
	Set(ctx context.Context, chave string, valor interface{}) error
}
