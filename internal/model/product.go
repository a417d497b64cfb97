package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Id        string          `json:"_id"`
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Reviews   []string        `json:"reviews"` // ids of the product's reviews, in insertion order
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// HasReview reports whether id is referenced by the product.
func (p Product) HasReview(id string) bool {
	for _, r := range p.Reviews {
		if r == id {
			return true
		}
	}
	return false
}
