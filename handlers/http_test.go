package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dayzlookup/domain"
	"dayzlookup/interfaces/mock"
	"dayzlookup/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSecret = "s3cret"

func newTestRouter(t *testing.T, resolver *mock.ServerResolverMock, cfg RouterConfig) *echo.Echo {
	t.Helper()
	if cfg.Secret == "" {
		cfg.Secret = testSecret
	}
	if cfg.RateLimit == 0 && cfg.Burst == 0 {
		cfg.RateLimit = rate.Inf
		cfg.Burst = 1
	}
	e, err := NewRouter(NewHTTPServer(resolver, log.NewNopLogger()), cfg, log.NewNopLogger())
	require.NoError(t, err)
	return e
}

func testServerInfo() domain.ServerInfo {
	return domain.ServerInfo{
		Name:    "X",
		Address: "1.2.3.4",
		Port:    2302,
		Players: domain.Players{Current: 10, Queue: 3, Max: 60},
		Environment: domain.Environment{
			Map:               "chernarus",
			Time:              "00:00",
			DayAcceleration:   1,
			NightAcceleration: 1,
		},
	}
}

type errBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHTTPServer_GetServer(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		authorization  string
		resolver       *mock.ServerResolverMock
		expectedStatus int
		expectedCode   string
		expectResolve  bool
	}{
		{
			name:          "ok",
			path:          "/1.2.3.4/2302",
			authorization: testSecret,
			resolver: &mock.ServerResolverMock{
				ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
					assert.Equal(t, "1.2.3.4", address)
					assert.Equal(t, "2302", port)
					return testServerInfo(), nil
				},
			},
			expectedStatus: http.StatusOK,
			expectResolve:  true,
		},
		{
			name:           "401 missing authorization",
			path:           "/1.2.3.4/2302",
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   service.ErrUnauthorized,
		},
		{
			name:           "401 wrong authorization",
			path:           "/1.2.3.4/2302",
			authorization:  "Bearer " + testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   service.ErrUnauthorized,
		},
		{
			name:           "401 unknown path without authorization",
			path:           "/servers",
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   service.ErrUnauthorized,
		},
		{
			name:           "404 unknown path",
			path:           "/servers",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
		},
		{
			name:           "404 too many segments",
			path:           "/1.2.3.4/2302/extra",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
		},
		{
			name:           "404 extra segments after port",
			path:           "/1.2.3.4/2302/a/b",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
		},
		{
			name:           "404 three segments",
			path:           "/a/b/c",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
		},
		{
			name:           "400 invalid address",
			path:           "/999.1.1.1/2302",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "400 short address",
			path:           "/1.2.3/2302",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "400 port out of range",
			path:           "/1.2.3.4/70000",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "400 port not a number",
			path:           "/1.2.3.4/abc",
			authorization:  testSecret,
			resolver:       &mock.ServerResolverMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:          "400 from resolver",
			path:          "/1.2.3.4/2302",
			authorization: testSecret,
			resolver: &mock.ServerResolverMock{
				ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
					return domain.ServerInfo{}, service.NewBadParameterError("invalid port", nil)
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
			expectResolve:  true,
		},
		{
			name:          "404 server not listed",
			path:          "/1.2.3.4/2303",
			authorization: testSecret,
			resolver: &mock.ServerResolverMock{
				ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
					return domain.ServerInfo{}, service.NewEntityNotFoundError("server 1.2.3.4:2303 not found", nil)
				},
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
			expectResolve:  true,
		},
		{
			name:          "500 upstream unavailable",
			path:          "/1.2.3.4/2302",
			authorization: testSecret,
			resolver: &mock.ServerResolverMock{
				ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
					return domain.ServerInfo{}, service.NewUpstreamUnavailableError("server directory is unavailable", assert.AnError)
				},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   service.ErrUpstreamUnavailable,
			expectResolve:  true,
		},
		{
			name:          "500 unexpected error",
			path:          "/1.2.3.4/2302",
			authorization: testSecret,
			resolver: &mock.ServerResolverMock{
				ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
					return domain.ServerInfo{}, assert.AnError
				},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   service.ErrInternalServerError,
			expectResolve:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(t, tt.resolver, RouterConfig{})
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectResolve {
				assert.Len(t, tt.resolver.ResolveCalls(), 1)
			} else {
				assert.Empty(t, tt.resolver.ResolveCalls())
			}

			if tt.expectedStatus == http.StatusOK {
				var resp ServerInfoResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, toServerInfoResponse(testServerInfo()), resp)
				return
			}
			var body errBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.expectedCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
			assert.NotContains(t, body.Error.Message, assert.AnError.Error())
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	resolver := &mock.ServerResolverMock{
		ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
			return testServerInfo(), nil
		},
	}
	e := newTestRouter(t, resolver, RouterConfig{RateLimit: 0, Burst: 1})

	serve := func() int {
		req := httptest.NewRequest(http.MethodGet, "/1.2.3.4/2302", nil)
		req.Header.Set("Authorization", testSecret)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve())
	assert.Equal(t, http.StatusTooManyRequests, serve())
	assert.Len(t, resolver.ResolveCalls(), 1)
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "dayz_lookup_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	e := newTestRouter(t, &mock.ServerResolverMock{}, RouterConfig{Gatherer: reg})

	t.Run("requires authorization", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("serves registry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Authorization", testSecret)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "dayz_lookup_test_total 1")
	})
}

func TestNewRouter_SecretRequired(t *testing.T) {
	_, err := NewRouter(NewHTTPServer(&mock.ServerResolverMock{}, log.NewNopLogger()), RouterConfig{}, log.NewNopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shared secret is required")
}

func TestNewHTTPServer_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "handlers.http.go: resolver is required", func() {
		NewHTTPServer(nil, log.NewNopLogger())
	})
}

func TestRouter_WrongMethodIsNotFound(t *testing.T) {
	resolver := &mock.ServerResolverMock{}
	e := newTestRouter(t, resolver, RouterConfig{})

	req := httptest.NewRequest(http.MethodPost, "/1.2.3.4/2302", nil)
	req.Header.Set("Authorization", testSecret)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body errBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, service.ErrEntityNotFound, body.Error.Code)
	assert.Empty(t, resolver.ResolveCalls())
}

func TestRouter_AuthBeforeRateLimit(t *testing.T) {
	resolver := &mock.ServerResolverMock{
		ResolveFunc: func(ctx context.Context, address string, port string) (domain.ServerInfo, error) {
			return testServerInfo(), nil
		},
	}
	e := newTestRouter(t, resolver, RouterConfig{RateLimit: 0, Burst: 1})

	serve := func(authorization string) int {
		req := httptest.NewRequest(http.MethodGet, "/1.2.3.4/2302", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	// Rejected requests do not take tokens.
	assert.Equal(t, http.StatusUnauthorized, serve(""))
	assert.Equal(t, http.StatusOK, serve(testSecret))
	// The bucket is empty now, a request without the secret still gets 401.
	assert.Equal(t, http.StatusUnauthorized, serve("wrong"))
	assert.Equal(t, http.StatusTooManyRequests, serve(testSecret))
}
