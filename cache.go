package kvcache

import (
	"context"

	c "github.com/unkn0wn-root/kvcache/codec"
	pr "github.com/unkn0wn-root/kvcache/provider"
)

// Cache is a flat façade over a Provider. It holds no locks; concurrent use is
// as safe as the provider underneath.
type Cache struct {
	provider pr.Provider
	log      Logger
	hooks    Hooks
	newKey   KeyFunc
}

func newCache(ctx context.Context, opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, ErrProviderRequired
	}

	cc := &Cache{provider: opts.Provider}

	// defaults
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.NewKey != nil {
		cc.newKey = opts.NewKey
	} else {
		cc.newKey = uuidKey
	}

	if err := cc.provider.Flush(ctx); err != nil {
		return nil, err
	}
	cc.hooks.Flushed()
	cc.log.Info("flushed provider namespace", nil)
	return cc, nil
}

// Close releases the provider.
func (cc *Cache) Close(ctx context.Context) error {
	if cc.provider != nil {
		return cc.provider.Close(ctx)
	}
	return nil
}

// Store writes v under a fresh key and returns the key once the provider has
// acknowledged the write.
func (cc *Cache) Store(ctx context.Context, v Value) (string, error) {
	return cc.put(ctx, v.Encode(), v.Kind())
}

// StoreAs encodes v with codec and stores the result as a bytes value.
func StoreAs[V any](ctx context.Context, cc *Cache, codec c.Codec[V], v V) (string, error) {
	raw, err := codec.Encode(v)
	if err != nil {
		return "", err
	}
	return cc.put(ctx, raw, KindBytes)
}

func (cc *Cache) put(ctx context.Context, raw []byte, kind Kind) (string, error) {
	key, err := cc.newKey()
	if err != nil {
		return "", err
	}
	if err := cc.provider.Set(ctx, key, raw); err != nil {
		return "", err
	}
	cc.log.Debug("stored value", Fields{"key": key, "kind": kind.String(), "size": len(raw)})
	return key, nil
}

// Get returns the raw bytes stored under key. A missing key is (nil, false, nil).
func (cc *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, ok, err := cc.provider.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		cc.hooks.Miss(key)
		cc.log.Debug("miss", Fields{"key": key})
		return nil, false, nil
	}
	return raw, true, nil
}

// GetWith reads key and applies fn to the stored bytes. fn is never called on
// a miss. With a nil fn the raw bytes are returned, which requires T = []byte.
func GetWith[T any](ctx context.Context, cc *Cache, key string, fn Transform[T]) (T, bool, error) {
	var zero T
	raw, ok, err := cc.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	if fn == nil {
		if v, isRaw := any(raw).(T); isRaw {
			return v, true, nil
		}
		return zero, false, ErrNoTransform
	}
	v, err := fn(raw)
	if err != nil {
		cc.hooks.TransformFailed(key, err)
		return zero, false, err
	}
	return v, true, nil
}

// GetStr reads key as text.
func (cc *Cache) GetStr(ctx context.Context, key string) (string, bool, error) {
	return GetWith[string](ctx, cc, key, c.String{}.Decode)
}

// GetInt reads key as a base-10 integer. Non-numeric content yields the parse
// error unmodified.
func (cc *Cache) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetWith[int64](ctx, cc, key, c.Int{}.Decode)
}

// GetFloat reads key as a 64-bit float.
func (cc *Cache) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return GetWith[float64](ctx, cc, key, c.Float{}.Decode)
}
