package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zuqiartcraft/Product-Website/internal/domain"
	"github.com/zuqiartcraft/Product-Website/internal/imagelist"
)

// The image_url column is TEXT. New writes always store the JSON array
// form; reads run through imagelist.Normalize so rows written as a bare URL
// before the schema settled keep working.
type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, name, short_description, long_description, COALESCE(size, ''), image_url, price, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var rawImages string
	err := row.Scan(&p.ID, &p.Name, &p.ShortDescription, &p.LongDescription, &p.Size, &rawImages, &p.Price, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Images = imagelist.Normalize(rawImages)
	return &p, nil
}

func (r *postgresRepo) collect(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) ListActive(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE is_active
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		r.logger.Printf("product repo: list active limit=%d offset=%d error=%v", limit, offset, err)
		return nil, err
	}
	result, err := r.collect(rows)
	if err != nil {
		r.logger.Printf("product repo: list active rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active`).Scan(&count)
	if err != nil {
		r.logger.Printf("product repo: count active error=%v", err)
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) GetActive(ctx context.Context, id string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE id = $1 AND is_active
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get active id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list all error=%v", err)
		return nil, err
	}
	result, err := r.collect(rows)
	if err != nil {
		r.logger.Printf("product repo: list all rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list all count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	q := `
INSERT INTO products (name, short_description, long_description, size, image_url, price, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + productColumns + `
`
	created, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Name,
		p.ShortDescription,
		p.LongDescription,
		p.Size,
		imagelist.Serialize(p.Images),
		p.Price,
		p.IsActive,
	))
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	q := `
UPDATE products
SET name = $2,
    short_description = $3,
    long_description = $4,
    size = $5,
    image_url = $6,
    price = $7,
    updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	updated, err := scanProduct(r.pool.QueryRow(ctx, q,
		id,
		p.Name,
		p.ShortDescription,
		p.LongDescription,
		p.Size,
		imagelist.Serialize(p.Images),
		p.Price,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s", id)
	return updated, nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) (*domain.Product, error) {
	q := `
UPDATE products
SET is_active = $2, updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	updated, err := scanProduct(r.pool.QueryRow(ctx, q, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: set active id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: set active id=%s active=%v", id, active)
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}
