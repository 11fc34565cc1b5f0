package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// SharedSecretAuth rejects every request whose Authorization header is not exactly secret.
// It runs for unknown paths too, so a client without the secret can't probe which paths exist.
func SharedSecretAuth(secret string) echo.MiddlewareFunc {
	expected := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			got := ectx.Request().Header.Get(echo.HeaderAuthorization)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				return echo.ErrUnauthorized
			}
			return next(ectx)
		}
	}
}

// RateLimit rejects requests with 429 once the global limiter is exhausted.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			if !limiter.Allow() {
				return echo.ErrTooManyRequests
			}
			return next(ectx)
		}
	}
}

// OpenAPIRequestValidator validates requests of documented routes against doc. Undocumented routes pass
// through untouched and are answered by echo. A validation failure becomes a 400 whose Internal error is
// the openapi3filter.RequestError, which the service error handler reports as bad_parameter.
func OpenAPIRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			req := ectx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ectx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return &echo.HTTPError{
					Code:     http.StatusBadRequest,
					Message:  err.Error(),
					Internal: err,
				}
			}
			return next(ectx)
		}
	}, nil
}
