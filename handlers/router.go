package handlers

import (
	"fmt"

	"dayzlookup/api"
	"dayzlookup/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// Secret is the exact Authorization header value every request must carry.
	Secret string
	// RateLimit is the global request rate; Burst the bucket size.
	RateLimit rate.Limit
	Burst     int
	// Gatherer is served on /metrics.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance: shared secret, rate limit, OpenAPI validation, lookup route and /metrics.
func NewRouter(server ServerInterface, cfg RouterConfig, logger log.Logger) (*echo.Echo, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("shared secret is required")
	}

	doc, err := api.LoadSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIRequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("can't build openapi router: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)

	e.Use(SharedSecretAuth(cfg.Secret))
	e.Use(RateLimit(rate.NewLimiter(cfg.RateLimit, cfg.Burst)))
	e.Use(validator)

	RegisterHandlers(e, server)
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	return e, nil
}
