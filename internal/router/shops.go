package router

import (
	"net/http"

	"github.com/deppfellow/go-shops/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerShopRoutes(r *echo.Echo, h *handler.Handlers) {
	shops := r.Group("/shops")

	shops.POST("", handler.Handle(h.Shop.CreateShop, http.StatusOK))
	shops.GET("", handler.Handle(h.Shop.ListShops, http.StatusOK))
	shops.GET("/:id", handler.Handle(h.Shop.GetShop, http.StatusOK))
	shops.PUT("/:id", handler.Handle(h.Shop.ReplaceShop, http.StatusOK))
	shops.DELETE("/:id", handler.Handle(h.Shop.DeleteShop, http.StatusOK))
}
