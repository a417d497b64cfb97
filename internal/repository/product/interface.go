package product

import (
	"context"

	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
)

type IRepository interface {
	GetById(ctx context.Context, id string) (*model.Product, error)
	Find(ctx context.Context, query filter.Query) ([]model.Product, error)
	// Count ignores the query's Skip, Limit and Sort.
	Count(ctx context.Context, query filter.Query) (int64, error)
	// FindAndCount returns the page of Find together with the Count of the same query.
	FindAndCount(ctx context.Context, query filter.Query) ([]model.Product, int64, error)
	Create(ctx context.Context, data *model.Product) error
	Delete(ctx context.Context, id string) error
	// AddReview appends reviewId to the product's reviews unless it is already present.
	AddReview(ctx context.Context, id string, reviewId string) error
	RemoveReview(ctx context.Context, id string, reviewId string) error
}
