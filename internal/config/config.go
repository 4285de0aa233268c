// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/VVain716/chess/internal/apperr"
	"github.com/gofiber/fiber/v2/log"
)

// Config holds the server settings.
type Config struct {
	Addr          string        // listen address, CHESS_ADDR
	AllowOrigins  string        // CORS origins, CHESS_ALLOW_ORIGINS
	MatchInterval time.Duration // matchmaking tick, CHESS_MATCH_INTERVAL
	LogLevel      log.Level     // CHESS_LOG_LEVEL
	WSBufferSize  int           // websocket read/write buffer, CHESS_WS_BUFFER
}

// Default returns the settings used when no variables are set.
func Default() Config {
	return Config{
		Addr:          ":3000",
		AllowOrigins:  "http://localhost:5173",
		MatchInterval: time.Second,
		LogLevel:      log.LevelInfo,
		WSBufferSize:  1024,
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads settings through lookup, falling back to Default for unset keys.
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("CHESS_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("CHESS_ALLOW_ORIGINS"); ok && v != "" {
		cfg.AllowOrigins = v
	}
	if v, ok := lookup("CHESS_MATCH_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("CHESS_MATCH_INTERVAL %q: %w", v, apperr.ErrInvalidConfig)
		}
		cfg.MatchInterval = d
	}
	if v, ok := lookup("CHESS_LOG_LEVEL"); ok && v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	if v, ok := lookup("CHESS_WS_BUFFER"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("CHESS_WS_BUFFER %q: %w", v, apperr.ErrInvalidConfig)
		}
		cfg.WSBufferSize = n
	}
	return cfg, nil
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, fmt.Errorf("CHESS_LOG_LEVEL %q: %w", s, apperr.ErrInvalidConfig)
}
