package kvcache

import "errors"

var (
	ErrProviderRequired = errors.New("kvcache: provider is required")

	// ErrNoTransform is returned by GetWith when no transform is given and the
	// requested result type is not []byte.
	ErrNoTransform = errors.New("kvcache: transform required for non-[]byte result")
)
