package repository

import (
	"context"
	"sync"

	"github.com/deppfellow/go-shops/internal/model"
	"github.com/google/uuid"
)

// MemoryShopRepository keeps shops in an insertion-ordered slice.
type MemoryShopRepository struct {
	mu    sync.RWMutex
	shops []model.Shop
	newID func() string
}

var _ ShopRepository = (*MemoryShopRepository)(nil)

// NewMemoryShopRepository returns an empty in-memory repository.
func NewMemoryShopRepository() *MemoryShopRepository {
	return &MemoryShopRepository{
		shops: []model.Shop{},
		newID: func() string { return uuid.NewString() },
	}
}

// SeedShops returns the demo records loaded when seeding is enabled.
func SeedShops() []model.ShopInput {
	description := "Good product"

	return []model.ShopInput{
		{Title: "Shoes", Description: &description, Price: model.PriceFromInt(15000)},
		{Title: "T-shirt", Description: &description, Price: model.PriceFromInt(7500)},
		{Title: "Bug", Description: &description, Price: model.PriceFromInt(750)},
	}
}

// Seed appends inputs as new records.
func (r *MemoryShopRepository) Seed(ctx context.Context, inputs []model.ShopInput) error {
	for _, input := range inputs {
		if _, err := r.Create(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryShopRepository) Create(_ context.Context, input model.ShopInput) (model.Shop, error) {
	shop := model.NewShop(r.newID(), input)

	r.mu.Lock()
	r.shops = append(r.shops, shop)
	r.mu.Unlock()

	return shop.Clone(), nil
}

func (r *MemoryShopRepository) List(_ context.Context) ([]model.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Shop, 0, len(r.shops))
	for _, shop := range r.shops {
		out = append(out, shop.Clone())
	}
	return out, nil
}

func (r *MemoryShopRepository) GetByID(_ context.Context, id string) (model.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Shop{}, ErrNotFound
	}
	return r.shops[i].Clone(), nil
}

func (r *MemoryShopRepository) Replace(_ context.Context, id string, input model.ShopInput) (model.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Shop{}, ErrNotFound
	}
	r.shops[i] = model.NewShop(r.shops[i].ID, input)
	return r.shops[i].Clone(), nil
}

func (r *MemoryShopRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.shops = append(r.shops[:i], r.shops[i+1:]...)
	return nil
}

// indexOf must be called with mu held. UUIDs match in any letter case.
func (r *MemoryShopRepository) indexOf(id string) int {
	if key, ok := parseID(id); ok {
		id = key
	}
	for i := range r.shops {
		if r.shops[i].ID == id {
			return i
		}
	}
	return -1
}
