package repository

import (
	"context"
	"time"

	"github.com/deppfellow/go-shops/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const shopColumns = `id::text, title, description, price`

// PostgresShopRepository stores shops in the shops table.
//
// Identifiers are generated here rather than by the database so both
// backends assign the same kind of id.
type PostgresShopRepository struct {
	pool          *pgxpool.Pool
	log           *zerolog.Logger
	slowThreshold time.Duration
}

var _ ShopRepository = (*PostgresShopRepository)(nil)

// NewPostgresShopRepository wraps an open pool. Queries slower than
// slowThreshold are logged at warn level; zero disables that.
func NewPostgresShopRepository(pool *pgxpool.Pool, log *zerolog.Logger, slowThreshold time.Duration) *PostgresShopRepository {
	return &PostgresShopRepository{
		pool:          pool,
		log:           log,
		slowThreshold: slowThreshold,
	}
}

func (r *PostgresShopRepository) Create(ctx context.Context, input model.ShopInput) (model.Shop, error) {
	defer r.observe(ctx, "create", time.Now())

	rows, err := r.pool.Query(ctx,
		`INSERT INTO shops (id, title, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING `+shopColumns,
		uuid.NewString(), input.Title, input.Description, input.Price,
	)
	if err != nil {
		return model.Shop{}, errors.Wrap(err, "insert shop")
	}

	shop, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[model.Shop])
	if err != nil {
		return model.Shop{}, errors.Wrap(err, "insert shop")
	}
	return shop, nil
}

func (r *PostgresShopRepository) List(ctx context.Context) ([]model.Shop, error) {
	defer r.observe(ctx, "list", time.Now())

	rows, err := r.pool.Query(ctx, `SELECT `+shopColumns+` FROM shops ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "list shops")
	}

	shops, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Shop])
	if err != nil {
		return nil, errors.Wrap(err, "list shops")
	}
	if shops == nil {
		shops = []model.Shop{}
	}
	return shops, nil
}

func (r *PostgresShopRepository) GetByID(ctx context.Context, id string) (model.Shop, error) {
	key, ok := parseID(id)
	if !ok {
		return model.Shop{}, ErrNotFound
	}
	defer r.observe(ctx, "get", time.Now())

	rows, err := r.pool.Query(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, key)
	if err != nil {
		return model.Shop{}, errors.Wrap(err, "get shop")
	}

	shop, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[model.Shop])
	if err != nil {
		return model.Shop{}, notFoundOr(err, "get shop")
	}
	return shop, nil
}

func (r *PostgresShopRepository) Replace(ctx context.Context, id string, input model.ShopInput) (model.Shop, error) {
	key, ok := parseID(id)
	if !ok {
		return model.Shop{}, ErrNotFound
	}
	defer r.observe(ctx, "replace", time.Now())

	rows, err := r.pool.Query(ctx,
		`UPDATE shops
		SET title = $2, description = $3, price = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+shopColumns,
		key, input.Title, input.Description, input.Price,
	)
	if err != nil {
		return model.Shop{}, errors.Wrap(err, "replace shop")
	}

	shop, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[model.Shop])
	if err != nil {
		return model.Shop{}, notFoundOr(err, "replace shop")
	}
	return shop, nil
}

func (r *PostgresShopRepository) Delete(ctx context.Context, id string) error {
	key, ok := parseID(id)
	if !ok {
		return ErrNotFound
	}
	defer r.observe(ctx, "delete", time.Now())

	tag, err := r.pool.Exec(ctx, `DELETE FROM shops WHERE id = $1`, key)
	if err != nil {
		return errors.Wrap(err, "delete shop")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// parseID normalizes a path id. Anything that is not a UUID cannot exist
// in the table.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return errors.Wrap(err, msg)
}

// observe logs queries that exceed the slow query threshold, preferring
// the request-scoped logger carried by ctx.
func (r *PostgresShopRepository) observe(ctx context.Context, op string, start time.Time) {
	elapsed := time.Since(start)
	if r.slowThreshold <= 0 || elapsed < r.slowThreshold {
		return
	}

	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled && r.log != nil {
		logger = r.log
	}

	logger.Warn().
		Str("operation", op).
		Dur("duration", elapsed).
		Dur("threshold", r.slowThreshold).
		Msg("slow shop query")
}
