package handler

import (
	"github.com/deppfellow/go-shops/internal/server"
	"github.com/deppfellow/go-shops/internal/service"
)

// Handlers groups every HTTP handler for router setup.
type Handlers struct {
	Shop    *ShopHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Shop:    NewShopHandler(s, services.Shop),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
