package main

import (
	"context"

	"github.com/BurntSushi/toml"
)

// config holds run defaults loadable from --config, overridable by
// per-subcommand flags.
type config struct {
	// Schreier requests exact group order via Schreier-Sims by default.
	Schreier bool `toml:"schreier"`
	// Bound caps GenerateGroup's BFS closure when the "gen" subcommand's
	// own --bound flag is left at its zero value.
	Bound uint64 `toml:"bound"`
}

// loadConfig reads path as TOML if non-empty, else returns the zero config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

type configCtxKey int

const configKey configCtxKey = 0

func withConfig(ctx context.Context, cfg config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) config {
	if cfg, ok := ctx.Value(configKey).(config); ok {
		return cfg
	}
	return config{}
}
