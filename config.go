package main

import (
	"flag"
	"fmt"
	"strconv"
)

// Environment variables read when the matching flag is not given.
const (
	envDBDir  = "CHESS2_DB_DIR"
	envMute   = "CHESS2_MUTE"
	envNoFlip = "CHESS2_NO_FLIP"
	envScale  = "CHESS2_SCALE"
)

type config struct {
	dbDir  string // empty means the platform data directory
	mute   bool
	noFlip bool
	scale  float64
}

// loadConfig resolves flags over environment variables over defaults.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{
		dbDir: getenv(envDBDir),
		scale: 1.0,
	}

	var err error
	if cfg.mute, err = envBool(getenv, envMute); err != nil {
		return cfg, err
	}
	if cfg.noFlip, err = envBool(getenv, envNoFlip); err != nil {
		return cfg, err
	}
	if v := getenv(envScale); v != "" {
		if cfg.scale, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w", envScale, err)
		}
	}

	fs := flag.NewFlagSet("chess2", flag.ContinueOnError)
	fs.StringVar(&cfg.dbDir, "db", cfg.dbDir, "database directory (env "+envDBDir+")")
	fs.BoolVar(&cfg.mute, "mute", cfg.mute, "start with sound off (env "+envMute+")")
	fs.BoolVar(&cfg.noFlip, "no-flip", cfg.noFlip, "do not flip the board after each move (env "+envNoFlip+")")
	fs.Float64Var(&cfg.scale, "scale", cfg.scale, "window scale factor (env "+envScale+")")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.scale <= 0 {
		return cfg, fmt.Errorf("scale must be positive, got %v", cfg.scale)
	}
	return cfg, nil
}

func envBool(getenv func(string) string, key string) (bool, error) {
	v := getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
