package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/kvcache"
	"github.com/unkn0wn-root/kvcache/internal/backend"
	"github.com/unkn0wn-root/kvcache/internal/config"
	"github.com/unkn0wn-root/kvcache/internal/logger"
	kvslog "github.com/unkn0wn-root/kvcache/log/slog"
	"github.com/unkn0wn-root/kvcache/sloghooks"
)

type rootFlags struct {
	configPath string
	provider   string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:           "kvcache",
		Short:         "Store and read values under random keys.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "Path to YAML config file.")
	cmd.PersistentFlags().StringVar(&f.provider, "provider", "", "Override provider: redis, ristretto or bigcache.")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable debug logs.")

	cmd.AddCommand(newRoundtripCmd(&f))
	return cmd
}

// openCache loads config, installs the tint logger and builds a flushed Cache.
func openCache(ctx context.Context, f *rootFlags) (*kvcache.Cache, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.provider != "" {
		cfg.Provider = f.provider
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	l := logger.Init(logger.Options{Level: level, TimeFormat: cfg.Log.TimeFormat})

	p, err := backend.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build provider: %w", err)
	}
	c, err := kvcache.New(ctx, kvcache.Options{
		Provider: p,
		Logger:   kvslog.Logger{L: l.With("provider", cfg.Provider)},
		Hooks:    sloghooks.New(l, sloghooks.Options{}),
	})
	if err != nil {
		_ = p.Close(ctx)
		return nil, fmt.Errorf("open cache: %w", err)
	}
	slog.Debug("cache ready", "provider", cfg.Provider)
	return c, nil
}
