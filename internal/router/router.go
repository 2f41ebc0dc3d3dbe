// Package router builds the Echo instance: the global middleware chain, the
// system routes and the /api routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/handler"
	"github.com/deppfellow/skyless/internal/metrics"
	"github.com/deppfellow/skyless/internal/middleware"
	"github.com/deppfellow/skyless/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// order matters: the request id feeds tracing and the context logger,
	// which the request logger and handlers read
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		metrics.Middleware(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api", middlewares.RateLimit.Limit())
	registerAPIRoutes(api, h)

	return router
}
