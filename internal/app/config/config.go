package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel      LogLeveler    `mapstructure:"LOG_LEVEL"`
	HTTP          HTTP          `mapstructure:",squash"`
	Aviationstack Aviationstack `mapstructure:",squash"`
	Cache         Cache         `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	Trip          Trip          `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Aviationstack holds the flight-data API settings. URL or key may be left
// empty; the flight lookup then serves demo data and logs the gap.
type Aviationstack struct {
	APIURL       string        `mapstructure:"AVIATIONSTACK_API_URL"`
	APIKey       string        `mapstructure:"AVIATIONSTACK_API_KEY"`
	Timeout      time.Duration `mapstructure:"AVIATIONSTACK_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"AVIATIONSTACK_RATE_LIMIT"`
}

// Cache holds the shared lookup-result cache settings.
type Cache struct {
	TTL time.Duration `mapstructure:"CACHE_TTL"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Trip holds the session trip-overview store settings. TTL mirrors the
// session cookie lifetime.
type Trip struct {
	TTL time.Duration `mapstructure:"TRIP_TTL"`
}
