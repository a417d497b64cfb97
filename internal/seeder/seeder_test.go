package seeder_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go-product-reviews/internal/catalog"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/memory"
	"go-product-reviews/internal/seeder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesLinkedProducts(t *testing.T) {
	products := memory.NewProductRepository()
	reviews := memory.NewReviewRepository()
	svc := catalog.New(products, reviews, catalog.DefaultOptions)
	ctx := context.Background()

	summary, err := seeder.New(svc, 8, 42).Seed(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, seeder.Summary{Requested: 90, Created: 90, Errors: []string{}}, summary)

	all, err := products.Find(ctx, filter.Query{})
	require.NoError(t, err)
	require.Len(t, all, 90)
	for _, p := range all {
		require.Len(t, p.Reviews, 1)
		assert.Equal(t, seeder.ProductImage, p.Image)
		assert.NotEmpty(t, p.Name)
		assert.False(t, p.Price.IsNegative())
		assert.Equal(t, catalog.CapitalizeFirst(p.Category), p.Category)

		rw, err := reviews.GetById(ctx, p.Reviews[0])
		require.NoError(t, err)
		assert.Equal(t, p.Id, rw.Product)
		assert.Equal(t, seeder.ReviewText, rw.Text)
		assert.Equal(t, seeder.ReviewUserName, rw.UserName)
	}
}

// flakyCatalog fails every third product.
type flakyCatalog struct {
	calls atomic.Int32
	inner seeder.Catalog
}

func (f *flakyCatalog) CreateProduct(ctx context.Context, data *model.Product) error {
	if f.calls.Add(1)%3 == 0 {
		return errors.New("write failed")
	}
	return f.inner.CreateProduct(ctx, data)
}

func (f *flakyCatalog) AddReview(ctx context.Context, productId string, data *model.Review) error {
	return f.inner.AddReview(ctx, productId, data)
}

func TestSeedAggregatesFailures(t *testing.T) {
	svc := catalog.New(memory.NewProductRepository(), memory.NewReviewRepository(), catalog.DefaultOptions)
	flaky := &flakyCatalog{inner: svc}

	summary, err := seeder.New(flaky, 4, 1).Seed(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 30, summary.Requested)
	assert.Equal(t, 20, summary.Created)
	assert.Equal(t, 10, summary.Failed)
	assert.Len(t, summary.Errors, 10)
	assert.Contains(t, summary.Errors[0], "write failed")
}

func TestSeedStopsOnCanceledContext(t *testing.T) {
	svc := catalog.New(memory.NewProductRepository(), memory.NewReviewRepository(), catalog.DefaultOptions)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := seeder.New(svc, 2, 1).Seed(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Created)
	assert.Equal(t, 10, summary.Failed)
}
