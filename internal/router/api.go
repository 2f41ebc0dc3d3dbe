package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/handler"
)

func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	reg := h.Registration
	api.POST("/connect-wallet", handler.Handle(reg.Handler, reg.ConnectWallet, http.StatusOK))
	api.POST("/signup-email", handler.Handle(reg.Handler, reg.SignupEmail, http.StatusOK))
	api.POST("/anonymous-session", handler.Handle(reg.Handler, reg.CreateAnonymousSession, http.StatusOK))
	api.GET("/user/wallet/:address", handler.Handle(reg.Handler, reg.GetUserByWallet, http.StatusOK))

	dash := h.Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.POST("/start-session", handler.Handle(dash.Handler, dash.StartSession, http.StatusOK))
	dashboard.POST("/end-session", handler.Handle(dash.Handler, dash.EndSession, http.StatusOK))
	dashboard.PUT("/mood", handler.Handle(dash.Handler, dash.UpdateMood, http.StatusOK))
	dashboard.GET("/:userId", handler.Handle(dash.Handler, dash.GetDashboard, http.StatusOK))

	refl := h.Reflection
	api.POST("/reflections", handler.Handle(refl.Handler, refl.Create, http.StatusOK))

	wh := h.Whisper
	whispers := api.Group("/whispers")
	whispers.GET("", handler.Handle(wh.Handler, wh.List, http.StatusOK))
	whispers.POST("/:whisperId/resonate", handler.Handle(wh.Handler, wh.Resonate, http.StatusOK))
	whispers.DELETE("/:whisperId", handler.HandleNoContent(wh.Handler, wh.Withdraw, http.StatusNoContent))
}
