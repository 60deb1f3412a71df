// Package kvcache implements a random-key caching façade over an external
// key-value store. Values are written under a fresh UUID v4 key and read back
// as raw bytes or through a caller-supplied transform.
//
// Components:
//   - Provider: byte store with flush/set/get (e.g. Redis, Ristretto, BigCache).
//   - Value: closed scalar variant (string, bytes, int64, float64) with a fixed
//     serialization per kind.
//   - Transform[T]: func([]byte) (T, error); codec Decode methods fit as-is.
//
// Construction clears the provider's active namespace (FLUSHDB on Redis).
// Never point a Cache at a namespace shared with unrelated data.
//
// Usage:
//
//	c, _ := kvcache.New(ctx, kvcache.Options{Provider: p})
//	key, _ := c.Store(ctx, kvcache.Int(42))
//	n, ok, err := c.GetInt(ctx, key) // 42, true, nil
//
// A miss is reported as ok=false with a nil error. Store and transform errors
// are returned to the caller unmodified.
package kvcache
