// Package provider defines the storage abstraction used by kvcache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). If a store performs internal transforms
// (e.g., compression), they MUST be fully reversed so that the bytes returned by
// Get are identical to the bytes provided to Set.
//
// Important: Flush clears the provider's whole active namespace (a Redis
// logical DB, or the entire in-process cache). Do not share that namespace with
// data kvcache does not own.
package provider

import (
	"context"
	"errors"
)

// ErrRejected is returned by Set when the store refused the write under pressure.
var ErrRejected = errors.New("provider: write rejected")

// Provider is a minimal byte store without expiry.
// Must be safe for concurrent use and must be byte-for-byte
// transparent: Get must return exactly the []byte previously passed to Set for
// the same key.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// An empty stored value is a hit. If an IO/remote error happens,
	// return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value unconditionally and without expiry. It returns only once
	// the write is visible to Get.
	Set(ctx context.Context, key string, value []byte) error

	// Flush deletes every key in the active namespace.
	Flush(ctx context.Context) error

	// Close releases resources.
	Close(ctx context.Context) error
}
