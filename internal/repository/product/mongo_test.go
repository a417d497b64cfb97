package product

import (
	"testing"

	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter(t *testing.T) {
	f := buildFilter([]filter.Where{
		{Path: CategoryFieldPath, Op: ops.Equal, Value: "Electronics"},
		{Path: NameFieldPath, Op: ops.Contains, Value: "Phone (X)"},
	})

	assert.Equal(t, "Electronics", f[CategoryFieldPath])
	assert.Equal(t, primitive.Regex{Pattern: `Phone \(X\)`, Options: "i"}, f[NameFieldPath])
}

func TestBuildFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildFilter(nil))
}

func TestFindOptions(t *testing.T) {
	opts := findOptions(filter.Query{
		Sort:  &filter.Sort{Path: PriceFieldPath, Direction: filter.Desc},
		Skip:  18,
		Limit: 9,
	})

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 18, *opts.Skip)
	assert.EqualValues(t, 9, *opts.Limit)
	assert.Equal(t, bson.D{{Key: PriceFieldPath, Value: -1}}, opts.Sort)
}

func TestFindOptionsUnordered(t *testing.T) {
	opts := findOptions(filter.Query{})

	assert.Nil(t, opts.Sort)
	assert.Nil(t, opts.Skip)
	assert.Nil(t, opts.Limit)
}

func TestDocumentRoundTripKeepsEmptyReviews(t *testing.T) {
	doc := document{Name: "Lamp", Price: 12.5}
	p := doc.toModel("abc")

	assert.Equal(t, "abc", p.Id)
	assert.Equal(t, "12.5", p.Price.String())
	assert.NotNil(t, p.Reviews)
	assert.Empty(t, p.Reviews)
	assert.NotNil(t, toDocument(p).Reviews)
}

func TestWindow(t *testing.T) {
	matches := []model.Product{{Id: "a"}, {Id: "b"}, {Id: "c"}}

	page, count := window(matches, filter.Query{Skip: 1, Limit: 1})
	assert.Equal(t, []model.Product{{Id: "b"}}, page)
	assert.EqualValues(t, 3, count)

	page, count = window(matches, filter.Query{Skip: 9, Limit: 9})
	assert.Empty(t, page)
	assert.EqualValues(t, 3, count)
}

func TestMatchesContains(t *testing.T) {
	doc := document{Name: "Smartphone Pro", Category: "Electronics"}

	assert.True(t, matchesContains(doc, []filter.Where{{Path: NameFieldPath, Op: ops.Contains, Value: "Phone"}}))
	assert.False(t, matchesContains(doc, []filter.Where{{Path: NameFieldPath, Op: ops.Contains, Value: "Tablet"}}))
	assert.True(t, matchesContains(doc, []filter.Where{{Path: CategoryFieldPath, Op: ops.Equal, Value: "ignored"}}))
}
