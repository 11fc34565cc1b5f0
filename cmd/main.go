package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayzlookup/adapters/memory"
	"dayzlookup/adapters/myredis"
	"dayzlookup/adapters/steam"
	"dayzlookup/handlers"
	"dayzlookup/interfaces"
	"dayzlookup/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting DayZ lookup service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"refresh_interval", config.RefreshInterval,
		"upstream_timeout", config.UpstreamTimeout,
		"redis_addr", config.Redis.Addr,
		"rate_limit_rps", config.RateLimitRPS,
	)

	var memo interfaces.MemoCache
	if !config.Redis.Enabled() {
		memo = memory.NewCache()
		level.Info(logger).Log("msg", "Using in-process memo cache")
	} else {
		redisClient, err := config.Redis.Connect(context.Background())
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		level.Info(logger).Log("msg", "Connected to Redis", "prefix", config.Redis.Prefix)

		memo = myredis.NewMemoCache(redisClient, config.Redis.Prefix, config.RefreshInterval)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var lookup *service.Lookup
	{
		directory := steam.NewDirectory(config.UpstreamURL, config.SteamAPIKey, &http.Client{Timeout: config.UpstreamTimeout})
		clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
		policy := service.NewRefreshPolicy(clock, config.RefreshInterval)
		lookup = service.NewLookup(directory, memo, policy, service.NewMetrics(registry), logger)
	}

	// Warm up, the service still starts when the directory is unavailable.
	if err := lookup.Refresh(context.Background()); err != nil {
		level.Warn(logger).Log("msg", "Initial server directory fetch failed", "err", err)
	}

	var e *echo.Echo
	{
		e, err = handlers.NewRouter(handlers.NewHTTPServer(lookup, logger), handlers.RouterConfig{
			Secret:    config.Secret,
			RateLimit: rate.Limit(config.RateLimitRPS),
			Burst:     config.Burst(),
			Gatherer:  registry,
		}, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create HTTP router", "err", err)
			os.Exit(1)
		}
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
