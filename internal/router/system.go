package router

import (
	"github.com/deppfellow/go-shops/internal/handler"
	"github.com/deppfellow/go-shops/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the shop API:
// health, docs UI and the embedded docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
