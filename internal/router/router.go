// Package router builds the echo instance: the global middleware chain,
// the error handler, and the route table.
package router

import (
	"github.com/deppfellow/go-shops/internal/handler"
	"github.com/deppfellow/go-shops/internal/middleware"
	"github.com/deppfellow/go-shops/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes. The returned echo instance is the
// http.Handler passed to server.SetupHTTPServer.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// RequestID first so every later middleware can log it; the New Relic
	// transaction must exist before ContextEnhancer reads its trace ids.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerShopRoutes(router, h)

	return router
}
