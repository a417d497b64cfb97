package filter_test

import (
	"testing"

	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"

	"github.com/stretchr/testify/assert"
)

func TestQueryPage(t *testing.T) {
	tests := []struct {
		name        string
		query       filter.Query
		n           int
		start, end  int
	}{
		{"no window", filter.Query{}, 5, 0, 5},
		{"first page", filter.Query{Skip: 0, Limit: 2}, 5, 0, 2},
		{"last partial page", filter.Query{Skip: 4, Limit: 2}, 5, 4, 5},
		{"past the end", filter.Query{Skip: 9, Limit: 2}, 5, 5, 5},
		{"empty", filter.Query{Skip: 0, Limit: 9}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.query.Page(tt.n)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestQueryHasOp(t *testing.T) {
	q := filter.Query{Where: []filter.Where{{Path: "name", Op: ops.Contains, Value: "Phone"}}}
	assert.True(t, q.HasOp(ops.Contains))
	assert.False(t, q.HasOp(ops.Equal))
}
