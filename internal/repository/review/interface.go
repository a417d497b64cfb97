package review

import (
	"context"

	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
)

type IRepository interface {
	GetById(ctx context.Context, id string) (*model.Review, error)
	Find(ctx context.Context, query filter.Query) ([]model.Review, error)
	// Count ignores the query's Skip, Limit and Sort.
	Count(ctx context.Context, query filter.Query) (int64, error)
	Create(ctx context.Context, data *model.Review) error
	Delete(ctx context.Context, id string) error
}
