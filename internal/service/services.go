package service

import (
	"github.com/deppfellow/go-shops/internal/repository"
	"github.com/deppfellow/go-shops/internal/server"
)

// Services groups the business services handed to the handler layer.
type Services struct {
	Shop *ShopService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Shop: NewShopService(s, repos.Shop),
	}, nil
}
