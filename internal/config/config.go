package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	AppName    = "Personal Diary"
	AppVersion = "1.0.0"
)

const (
	DefaultRoot      = "Diary"
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultRateLimit = 20
)

type Config struct {
	Addr      string
	Root      string
	LogLevel  string
	RateLimit int // requests per second per client on the HTTP API
}

func Load() Config {
	addr := os.Getenv("DIARY_ADDR")
	if addr == "" {
		addr = DefaultAddr
	}
	root := os.Getenv("DIARY_ROOT")
	if root == "" {
		root = DefaultRoot
	}
	level := os.Getenv("DIARY_LOG_LEVEL")
	if level == "" {
		level = DefaultLogLevel
	}
	rateLimit := DefaultRateLimit
	if raw := os.Getenv("DIARY_RATE_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			rateLimit = n
		}
	}

	return Config{
		Addr:      addr,
		Root:      filepath.Clean(root),
		LogLevel:  level,
		RateLimit: rateLimit,
	}
}
