// Package repository handles all interactions with the data store.
//
// ShopRepository is the storage port the service layer depends on. It has
// an in-memory implementation and a PostgreSQL implementation with raw SQL
// queries, so the service never sees which backend is active.
package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/go-shops/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no shop has the requested identifier.
var ErrNotFound = errors.New("shop not found")

// ShopRepository stores shop records.
type ShopRepository interface {
	// Create stores a new record under a freshly generated identifier.
	Create(ctx context.Context, input model.ShopInput) (model.Shop, error)
	// List returns every record. Never nil.
	List(ctx context.Context) ([]model.Shop, error)
	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id string) (model.Shop, error)
	// Replace overwrites every writable field of the record or returns ErrNotFound.
	Replace(ctx context.Context, id string, input model.ShopInput) (model.Shop, error)
	// Delete removes the record or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// parseID returns the canonical lowercase form of a UUID identifier.
func parseID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
