package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/config"
	"github.com/deppfellow/skyless/internal/errs"
	"github.com/deppfellow/skyless/internal/server"
	"github.com/deppfellow/skyless/internal/sqlerr"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          1,
				RateLimitBurst:     2,
			},
		},
		Logger: &logger,
	}
}

func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("x", 129)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, bad)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Len(t, rec.Header().Get(RequestIDHeader), 36, bad)
	}
}

func TestActingUserID(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/whispers?userId=9", nil), httptest.NewRecorder())
	assert.Equal(t, "9", actingUserID(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/dashboard/4", nil), httptest.NewRecorder())
	c.SetParamNames("userId")
	c.SetParamValues("4")
	assert.Equal(t, "4", actingUserID(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), httptest.NewRecorder())
	assert.Empty(t, actingUserID(c))
}

func TestEnhanceContext_StoresLoggerOnBothContexts(t *testing.T) {
	s := newTestServer()
	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())

	var echoLogger, ctxLogger *zerolog.Logger
	e.GET("/", func(c echo.Context) error {
		echoLogger = GetLogger(c)
		ctxLogger = zerolog.Ctx(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, echoLogger)
	require.NotNil(t, ctxLogger)
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "http error",
			err:     errs.NewForbiddenError("Only the author can withdraw this whisper", true),
			status:  http.StatusForbidden,
			code:    "FORBIDDEN",
			message: "Only the author can withdraw this whisper",
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("toggle: %w", sqlerr.NotFound("whispers")),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Whisper not found",
		},
		{
			name:    "unknown error",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: http.StatusText(http.StatusInternalServerError),
		},
		{
			name:    "echo error",
			err:     echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			status:  http.StatusMethodNotAllowed,
			code:    "METHOD_NOT_ALLOWED",
			message: "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(newTestServer())
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := newEcho(newTestServer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	e := newEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/api/whispers", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/whispers", nil)
		req.RemoteAddr = "198.51.100.7:4242"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Code)

	// other clients have their own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/whispers", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	other := httptest.NewRecorder()
	e.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}
