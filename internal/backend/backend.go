// Package backend builds a provider.Provider from configuration.
package backend

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/kvcache/internal/config"
	pr "github.com/unkn0wn-root/kvcache/provider"
	bcp "github.com/unkn0wn-root/kvcache/provider/bigcache"
	rdp "github.com/unkn0wn-root/kvcache/provider/redis"
	rtp "github.com/unkn0wn-root/kvcache/provider/ristretto"
)

// NewFromConfig constructs the provider named by cfg.Provider. A Redis
// provider owns its client and closes it on Close.
func NewFromConfig(cfg config.Config) (pr.Provider, error) {
	switch cfg.Provider {
	case config.ProviderRedis:
		return rdp.New(rdp.Config{
			Client:      goredis.NewClient(redisOptions(cfg.Redis)),
			CloseClient: true,
		})
	case config.ProviderRistretto:
		return rtp.New(rtp.Config{
			NumCounters: cfg.Ristretto.NumCounters,
			MaxCost:     cfg.Ristretto.MaxCost,
			BufferItems: cfg.Ristretto.BufferItems,
		})
	case config.ProviderBigCache:
		return bcp.New(bcp.Config{
			LifeWindow:         cfg.BigCache.LifeWindow,
			MaxEntriesInWindow: cfg.BigCache.MaxEntriesInWindow,
			MaxEntrySize:       cfg.BigCache.MaxEntrySize,
			HardMaxCacheSizeMB: cfg.BigCache.HardMaxCacheSizeMB,
		})
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

func redisOptions(rc config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:         rc.Addr,
		Username:     rc.Username,
		Password:     rc.Password,
		DB:           rc.DB,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
		// no retries: a failed command surfaces to the caller as-is
		MaxRetries: -1,
	}
}
