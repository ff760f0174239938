package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-shops/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Shop ShopRepository
}

// NewRepositories constructs the repository container for the configured
// storage backend.
//
// The postgres backend needs the pool opened by server.New; the memory
// backend is optionally seeded with the demo shops.
func NewRepositories(s *server.Server) (*Repositories, error) {
	if s.Config.IsPostgres() {
		if s.DB == nil {
			return nil, fmt.Errorf("postgres backend selected but database is not initialized")
		}
		return &Repositories{
			Shop: NewPostgresShopRepository(s.DB.Pool, s.Logger, s.Config.Observability.Logging.SlowQueryThreshold),
		}, nil
	}

	memory := NewMemoryShopRepository()
	if s.Config.Storage.Seed {
		if err := memory.Seed(context.Background(), SeedShops()); err != nil {
			return nil, fmt.Errorf("seeding memory repository: %w", err)
		}
		s.Logger.Info().Int("count", len(SeedShops())).Msg("seeded memory shop repository")
	}

	return &Repositories{Shop: memory}, nil
}
