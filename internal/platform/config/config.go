package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	LogLevel       slog.Level
	RequestTimeout time.Duration
	Policy         Policy
}

// Policy holds the service terms shown before the user agrees to them.
type Policy struct {
	IntroCadence time.Duration
	FeeKRW       int
}

const (
	defaultAddr           = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultIntroCadence   = 72 * time.Hour
	defaultFeeKRW         = 29000
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Server{Addr: get("MATCHMAKER_ADDR", defaultAddr)}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Server{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.RequestTimeout, err = time.ParseDuration(get("REQUEST_TIMEOUT", defaultRequestTimeout.String())); err != nil {
		return Server{}, fmt.Errorf("parse REQUEST_TIMEOUT: %w", err)
	}
	if cfg.Policy.IntroCadence, err = time.ParseDuration(get("INTRO_CADENCE", defaultIntroCadence.String())); err != nil {
		return Server{}, fmt.Errorf("parse INTRO_CADENCE: %w", err)
	}
	if cfg.Policy.FeeKRW, err = strconv.Atoi(get("INTRO_FEE_KRW", strconv.Itoa(defaultFeeKRW))); err != nil {
		return Server{}, fmt.Errorf("parse INTRO_FEE_KRW: %w", err)
	}
	if cfg.Policy.FeeKRW < 0 {
		return Server{}, fmt.Errorf("INTRO_FEE_KRW must not be negative")
	}
	if cfg.Policy.IntroCadence <= 0 {
		return Server{}, fmt.Errorf("INTRO_CADENCE must be positive")
	}

	return cfg, nil
}
