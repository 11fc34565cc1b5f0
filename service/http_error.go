package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrUnauthorized] = http.StatusUnauthorized
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrTooManyRequests] = http.StatusTooManyRequests
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError
	errorCodeToStatusCodeMaps[ErrUpstreamUnavailable] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// getErrorCode is the reverse lookup used for echo.HTTPError values raised by middleware and the router.
func (h *HTTPErrorHandler) getErrorCode(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadParameter
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrEntityNotFound
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	}

	return ErrInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var statusCode int
	var he *echo.HTTPError
	myErr := ToMyError(err)
	switch {
	case myErr != nil:
		statusCode = h.getStatusCode(myErr.Code)
	case errors.As(err, &he):
		if herr, ok := he.Internal.(*echo.HTTPError); ok {
			he = herr
		}
		statusCode = he.Code
		// The API has one method per path, a wrong method is reported like an unknown path.
		if statusCode == http.StatusMethodNotAllowed {
			statusCode = http.StatusNotFound
		}
		codeStr := h.getErrorCode(statusCode)
		var requestError *openapi3filter.RequestError
		if errors.As(he.Internal, &requestError) {
			codeStr = ErrBadParameter
		}

		m, ok := he.Message.(string)
		if !ok || m == "" || statusCode != he.Code {
			m = http.StatusText(statusCode)
		}
		myErr = NewMyError(codeStr, m, err)
	default:
		myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
		statusCode = http.StatusInternalServerError
	}

	logger := level.Warn(h.logger)
	if statusCode >= http.StatusInternalServerError {
		logger = level.Error(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	// Send response
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
	} else {
		_ = c.JSON(statusCode, ErrResponse{Error: myErr})
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
