// Package handlers contains http handlers for the DayZ server lookup.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"dayzlookup/helpers"
	"dayzlookup/interfaces"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// ServerInterface is the lookup API described by api/dayz-lookup.openapi.yaml.
type ServerInterface interface {
	// GetServer (GET /{address}/{port}) returns one server.
	GetServer(ectx echo.Context, address string, port string) error
}

// RegisterHandlers registers the ServerInterface routes.
func RegisterHandlers(e *echo.Echo, si ServerInterface) {
	e.GET("/:address/:port", func(ectx echo.Context) error {
		address, port := ectx.Param("address"), ectx.Param("port")
		// echo hands the rest of the path to the last param, /a/b/c is not this route.
		if strings.Contains(address, "/") || strings.Contains(port, "/") {
			return echo.ErrNotFound
		}
		return si.GetServer(ectx, address, port)
	})
}

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	resolver interfaces.ServerResolver
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(resolver interfaces.ServerResolver, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		resolver: helpers.NilPanic(resolver, "handlers.http.go: resolver is required"),
		logger:   logger,
	}
}

// GetServer (GET /{address}/{port}) resolves the server. Returns 200 with the server, 400 on a malformed
// address or port, 404 when the server is not listed, 500 when the server list is unavailable.
func (h *HTTPServer) GetServer(ectx echo.Context, address string, port string) error {
	ctx := ectx.Request().Context()
	info, err := h.resolver.Resolve(ctx, address, port)
	if err != nil {
		return fmt.Errorf("getServer failed to resolve %s:%s, err: %w", address, port, err)
	}

	return ectx.JSON(http.StatusOK, toServerInfoResponse(info))
}
