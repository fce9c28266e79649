package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog entry as consumed by every view. Images is always
// the normalized ordered form; index 0 is the main image.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Size             string          `json:"size,omitempty"`
	Images           []string        `json:"images"`
	Price            decimal.Decimal `json:"price"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MainImage returns the image at index 0, or "" when the product has none.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
