package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/handler"
	"github.com/deppfellow/skyless/internal/metrics"
	"github.com/deppfellow/skyless/static"
)

// registerSystemRoutes mounts the endpoints that sit outside the API:
// health, metrics and the docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.HEAD("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
