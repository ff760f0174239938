package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/deppfellow/go-shops/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// setupPostgres connects to SHOPS_TEST_DATABASE_URL and prepares an empty
// shops table. The test is skipped when the variable is unset.
func setupPostgres(t *testing.T) *PostgresShopRepository {
	t.Helper()

	dsn := os.Getenv("SHOPS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("SHOPS_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect to test DB: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS shops (
  id uuid PRIMARY KEY,
  title text NOT NULL DEFAULT '',
  description text,
  price numeric,
  created_at timestamptz NOT NULL DEFAULT now(),
  updated_at timestamptz NOT NULL DEFAULT now()
)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM shops`); err != nil {
		t.Fatalf("clean table: %v", err)
	}

	log := zerolog.Nop()
	return NewPostgresShopRepository(pool, &log, 0)
}

func TestPostgresLifecycle(t *testing.T) {
	r := setupPostgres(t)
	ctx := context.Background()

	created, err := r.Create(ctx, model.ShopInput{Title: "Hat", Description: text("Warm"), Price: price(1200)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", created.ID)
	}

	got, err := r.GetByID(ctx, created.ID)
	if err != nil || got.Title != "Hat" || *got.Description != "Warm" || !got.Price.Equal(price(1200).Decimal) {
		t.Fatalf("get: %+v (%v)", got, err)
	}

	replaced, err := r.Replace(ctx, created.ID, model.ShopInput{Title: "Cap"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.Title != "Cap" || replaced.Description != nil || replaced.Price != nil {
		t.Fatalf("expected wholesale replace, got %+v", replaced)
	}

	if err := r.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPostgresListOrder(t *testing.T) {
	r := setupPostgres(t)
	ctx := context.Background()

	shops, err := r.List(ctx)
	if err != nil || shops == nil || len(shops) != 0 {
		t.Fatalf("expected empty list, got %v (%v)", shops, err)
	}

	for _, title := range []string{"a", "b", "c"} {
		if _, err := r.Create(ctx, model.ShopInput{Title: title, Price: price(1)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	shops, err = r.List(ctx)
	if err != nil || len(shops) != 3 {
		t.Fatalf("list: %v (%v)", shops, err)
	}
}

func TestPostgresNotFound(t *testing.T) {
	r := setupPostgres(t)
	ctx := context.Background()

	for _, id := range []string{uuid.NewString(), "not-a-uuid", "42"} {
		if _, err := r.GetByID(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("get %q: expected ErrNotFound, got %v", id, err)
		}
		if _, err := r.Replace(ctx, id, model.ShopInput{Title: "x"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("replace %q: expected ErrNotFound, got %v", id, err)
		}
		if err := r.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("delete %q: expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	if got, ok := parseID(id.String()); !ok || got != id.String() {
		t.Fatalf("parseID(%q) = %q, %v", id, got, ok)
	}
	if _, ok := parseID("nope"); ok {
		t.Fatalf("expected invalid id to be rejected")
	}
}
