package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	pr "github.com/unkn0wn-root/kvcache/provider"
)

// defaultLifeWindow is long enough to behave as "no expiry" for a process.
// BigCache has no per-entry TTL and needs some window.
const defaultLifeWindow = 24 * time.Hour

// defaultMaxEntriesInWindow keeps the initial shard allocation small; bigcache's
// own default preallocates hundreds of MB.
const defaultMaxEntriesInWindow = 10_000

type Provider struct {
	c *bc.BigCache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	LifeWindow         time.Duration // 0 => 24h
	MaxEntriesInWindow int           // sizing hint for initial allocation; 0 => 10k
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Provider, error) {
	lw := cfg.LifeWindow
	if lw <= 0 {
		lw = defaultLifeWindow
	}
	conf := bc.DefaultConfig(lw)
	// no background eviction; entries live until Flush
	conf.CleanWindow = 0
	conf.MaxEntriesInWindow = defaultMaxEntriesInWindow
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte) error {
	return p.c.Set(key, value)
}

func (p *Provider) Flush(_ context.Context) error {
	return p.c.Reset()
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}
