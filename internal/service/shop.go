package service

import (
	"context"
	"errors"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/deppfellow/go-shops/internal/model"
	"github.com/deppfellow/go-shops/internal/repository"
	"github.com/deppfellow/go-shops/internal/server"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ShopNotFoundMessage is the body message of every shop 404.
const ShopNotFoundMessage = "Shop not found"

// ShopService implements the shop use cases on top of a ShopRepository.
type ShopService struct {
	server *server.Server
	repo   repository.ShopRepository
}

func NewShopService(s *server.Server, repo repository.ShopRepository) *ShopService {
	return &ShopService{
		server: s,
		repo:   repo,
	}
}

// Create stores a new shop and returns it with its generated id.
func (s *ShopService) Create(ctx context.Context, input model.ShopInput) (model.Shop, error) {
	shop, err := s.repo.Create(ctx, input)
	if err != nil {
		return model.Shop{}, pkgerrors.Wrap(err, "create shop")
	}

	zerolog.Ctx(ctx).Info().Str("shop_id", shop.ID).Msg("shop created")
	return shop, nil
}

// List returns every stored shop.
func (s *ShopService) List(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list shops")
	}
	return shops, nil
}

// Get returns one shop or a 404 error.
func (s *ShopService) Get(ctx context.Context, id string) (model.Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Shop{}, s.mapError(err, "get shop")
	}
	return shop, nil
}

// Replace overwrites every writable field of a shop. Fields missing from
// input are cleared.
func (s *ShopService) Replace(ctx context.Context, id string, input model.ShopInput) (model.Shop, error) {
	shop, err := s.repo.Replace(ctx, id, input)
	if err != nil {
		return model.Shop{}, s.mapError(err, "replace shop")
	}

	zerolog.Ctx(ctx).Info().Str("shop_id", shop.ID).Msg("shop replaced")
	return shop, nil
}

// Delete removes a shop or returns a 404 error.
func (s *ShopService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError(err, "delete shop")
	}

	zerolog.Ctx(ctx).Info().Str("shop_id", id).Msg("shop deleted")
	return nil
}

func (s *ShopService) mapError(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(ShopNotFoundMessage)
	}
	return pkgerrors.Wrap(err, op)
}
