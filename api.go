package kvcache

import (
	"context"

	pr "github.com/unkn0wn-root/kvcache/provider"
)

// KeyFunc generates a fresh storage key.
type KeyFunc func() (string, error)

// Transform converts raw stored bytes into a target representation.
type Transform[T any] func(raw []byte) (T, error)

// Options tune the façade. Only Provider is required.
type Options struct {
	Provider pr.Provider

	Logger Logger  // if nil, NopLogger is used
	Hooks  Hooks   // if nil, NopHooks is used
	NewKey KeyFunc // if nil, UUID v4 keys are used
}

// New builds a Cache over opts.Provider and flushes the provider's active
// namespace. The flush is irreversible.
func New(ctx context.Context, opts Options) (*Cache, error) {
	return newCache(ctx, opts)
}
