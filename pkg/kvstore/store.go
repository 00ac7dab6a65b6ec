// Package kvstore holds the raw byte key/value backends itineraries are persisted in.
package kvstore

import "context"

// Store is a minimal key/value service. Get reports a missing key with
// found == false and a nil error; err is reserved for backend failures.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
