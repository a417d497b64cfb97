package memory

import (
	"context"
	"errors"
	"testing"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"
	"go-product-reviews/internal/repository/product"
	"go-product-reviews/internal/repository/review"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, repo *ProductRepository, prices ...string) []model.Product {
	t.Helper()
	ctx := context.Background()

	var products []model.Product
	for i, price := range prices {
		p := model.Product{
			Category: "Electronics",
			Name:     []string{"Smartphone Pro", "Laptop", "Tablet Mini", "Phone Case"}[i%4],
			Price:    decimal.RequireFromString(price),
		}
		require.NoError(t, repo.Create(ctx, &p))
		products = append(products, p)
	}
	return products
}

func TestProductFindSortAndPage(t *testing.T) {
	repo := NewProductRepository()
	seedProducts(t, repo, "10", "30", "20", "5")

	found, err := repo.Find(context.Background(), filter.Query{
		Sort:  &filter.Sort{Path: product.PriceFieldPath, Direction: filter.Desc},
		Skip:  1,
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "20", found[0].Price.String())
	assert.Equal(t, "10", found[1].Price.String())
}

func TestProductFindKeepsInsertionOrderWithoutSort(t *testing.T) {
	repo := NewProductRepository()
	created := seedProducts(t, repo, "10", "30", "20")

	found, err := repo.Find(context.Background(), filter.Query{})
	require.NoError(t, err)
	require.Len(t, found, 3)
	for i := range created {
		assert.Equal(t, created[i].Id, found[i].Id)
	}
}

func TestProductContainsIsCaseInsensitive(t *testing.T) {
	repo := NewProductRepository()
	seedProducts(t, repo, "1", "2", "3", "4")

	q := filter.Query{Where: []filter.Where{{Path: product.NameFieldPath, Op: ops.Contains, Value: "PHONE"}}}
	count, err := repo.Count(context.Background(), q)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestProductFindAndCount(t *testing.T) {
	repo := NewProductRepository()
	seedProducts(t, repo, "1", "2", "3", "4", "5")

	q := filter.Query{
		Where: []filter.Where{{Path: product.NameFieldPath, Op: ops.Contains, Value: "phone"}},
		Skip:  1,
		Limit: 1,
	}
	found, count, err := repo.FindAndCount(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Phone Case", found[0].Name)
	assert.EqualValues(t, 3, count)
}

func TestProductReviewsAreCopied(t *testing.T) {
	repo := NewProductRepository()
	p := seedProducts(t, repo, "1")[0]
	ctx := context.Background()

	require.NoError(t, repo.AddReview(ctx, p.Id, "r1"))
	require.NoError(t, repo.AddReview(ctx, p.Id, "r1"))

	got, err := repo.GetById(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, got.Reviews)

	got.Reviews[0] = "mutated"
	again, err := repo.GetById(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, again.Reviews)

	require.NoError(t, repo.RemoveReview(ctx, p.Id, "r1"))
	again, err = repo.GetById(ctx, p.Id)
	require.NoError(t, err)
	assert.Empty(t, again.Reviews)
}

func TestProductDeleteMissing(t *testing.T) {
	repo := NewProductRepository()

	err := repo.Delete(context.Background(), "nope")
	assert.True(t, errors.Is(err, ierr.NotFound))

	err = repo.AddReview(context.Background(), "nope", "r1")
	assert.True(t, errors.Is(err, ierr.NotFound))
}

func TestReviewFilterByProduct(t *testing.T) {
	repo := NewReviewRepository()
	ctx := context.Background()

	for _, pid := range []string{"p1", "p2", "p1"} {
		require.NoError(t, repo.Create(ctx, &model.Review{UserName: "u", Text: "t", Product: pid}))
	}

	q := filter.Query{Where: []filter.Where{{Path: review.ProductFieldPath, Op: ops.Equal, Value: "p1"}}}
	found, err := repo.Find(ctx, q)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	all, err := repo.Count(ctx, filter.Query{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all)
}

func TestReviewDelete(t *testing.T) {
	repo := NewReviewRepository()
	ctx := context.Background()

	rw := model.Review{UserName: "u", Text: "t", Product: "p1"}
	require.NoError(t, repo.Create(ctx, &rw))
	require.NoError(t, repo.Delete(ctx, rw.Id))

	_, err := repo.GetById(ctx, rw.Id)
	assert.True(t, errors.Is(err, ierr.NotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, rw.Id), ierr.NotFound))
}
