package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"dayzlookup/adapters/myredis"
	"dayzlookup/adapters/steam"
	"dayzlookup/service"
)

const (
	defaultHTTPPort        = 8080
	defaultUpstreamTimeout = 10 * time.Second
	defaultRateLimitRPS    = 50
	defaultRedisPrefix     = "dayz-lookup"
)

type DayZLookupConfig struct {
	SteamAPIKey     string
	Secret          string
	HTTPPort        int
	RefreshInterval time.Duration
	UpstreamURL     string
	UpstreamTimeout time.Duration
	// Redis.Addr is empty when the in-process memo cache is used.
	Redis        myredis.RedisConfig
	RateLimitRPS float64
}

// LoadConfig loads configuration from environment variables.
// STEAM_WEB_API_KEY and PASS are required, everything else has a default.
func LoadConfig() (*DayZLookupConfig, error) {
	apiKey := os.Getenv("STEAM_WEB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("STEAM_WEB_API_KEY is required")
	}

	secret := os.Getenv("PASS")
	if secret == "" {
		return nil, fmt.Errorf("PASS is required")
	}

	httpPort := defaultHTTPPort
	if s := os.Getenv("SERVICE_PORT_HTTP"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
		}
		if p < 0 || p > 65535 {
			return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %d is out of range", p)
		}
		httpPort = p
	}

	refreshInterval, err := durationEnv("REFRESH_INTERVAL", service.DefaultRefreshInterval)
	if err != nil {
		return nil, err
	}
	upstreamTimeout, err := durationEnv("UPSTREAM_TIMEOUT", defaultUpstreamTimeout)
	if err != nil {
		return nil, err
	}

	upstreamURL := os.Getenv("UPSTREAM_URL")
	if upstreamURL == "" {
		upstreamURL = steam.DefaultBaseURL
	}

	rps := float64(defaultRateLimitRPS)
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: must be positive")
		}
		rps = v
	}

	redisPrefix := os.Getenv("REDIS_PREFIX")
	if redisPrefix == "" {
		redisPrefix = defaultRedisPrefix
		if host, err := os.Hostname(); err == nil && host != "" {
			redisPrefix += ":" + host
		}
	}

	return &DayZLookupConfig{
		SteamAPIKey:     apiKey,
		Secret:          secret,
		HTTPPort:        httpPort,
		RefreshInterval: refreshInterval,
		UpstreamURL:     upstreamURL,
		UpstreamTimeout: upstreamTimeout,
		Redis: myredis.RedisConfig{
			Addr:   os.Getenv("REDIS_ADDR"),
			Prefix: redisPrefix,
		},
		RateLimitRPS: rps,
	}, nil
}

// Burst is the rate limiter bucket size, twice the rate but at least 1.
func (c *DayZLookupConfig) Burst() int {
	b := int(2 * c.RateLimitRPS)
	if b < 1 {
		return 1
	}
	return b
}

func durationEnv(name string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return d, nil
}
