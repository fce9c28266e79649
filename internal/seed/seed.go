package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zuqiartcraft/Product-Website/internal/imagelist"
)

type productSeed struct {
	Name             string
	ShortDescription string
	LongDescription  string
	Size             string
	Images           []string
	Price            string
	IsActive         bool
}

// Apply inserts sample products for manual testing. It is idempotent: a
// product is only inserted when no row with the same name exists.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:             "Hand-Painted Clay Vase",
			ShortDescription: "Terracotta vase with floral motif",
			LongDescription:  "A wheel-thrown terracotta vase, hand-painted with a traditional floral motif and sealed with a matte finish.",
			Size:             "24cm x 12cm",
			Images:           []string{"https://example.com/images/vase-front.jpg", "https://example.com/images/vase-side.jpg"},
			Price:            "49.99",
			IsActive:         true,
		},
		{
			Name:             "Woven Jute Wall Hanging",
			ShortDescription: "Natural jute, handwoven",
			LongDescription:  "Handwoven wall hanging in natural jute with cotton accents. Each piece varies slightly in weave.",
			Images:           []string{"https://example.com/images/jute-hanging.jpg"},
			Price:            "32.50",
			IsActive:         true,
		},
		{
			Name:             "Carved Wooden Elephant",
			ShortDescription: "Rosewood, hand-carved",
			LongDescription:  "A hand-carved rosewood elephant figurine, polished with natural wax.",
			Size:             "15cm",
			Images:           []string{"https://example.com/images/elephant-1.jpg", "https://example.com/images/elephant-2.jpg", "https://example.com/images/elephant-3.jpg"},
			Price:            "64.00",
			IsActive:         false,
		},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}
	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, short_description, long_description, size, image_url, price, is_active)
SELECT $1, $2, $3, $4, $5, $6::numeric, $7
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q,
		p.Name,
		p.ShortDescription,
		p.LongDescription,
		p.Size,
		imagelist.Serialize(p.Images),
		p.Price,
		p.IsActive,
	)
	return err
}
