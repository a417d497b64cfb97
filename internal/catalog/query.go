package catalog

import (
	"math"
	"unicode"
	"unicode/utf8"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"
	"go-product-reviews/internal/repository/product"
)

type PriceOrder string

const (
	PriceHighest PriceOrder = "highest"
	PriceLowest  PriceOrder = "lowest"
)

// CapitalizeFirst upper-cases the first character and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// skip returns the offset of a 1-based page. Pages whose offset does not fit in an int64 are rejected.
func skip(page, pageSize int) (int64, error) {
	if page < 1 {
		return 0, ierr.Invalidf("page must be at least 1, got %d", page)
	}
	if pageSize > 0 && int64(page-1) > math.MaxInt64/int64(pageSize) {
		return 0, ierr.Invalidf("page %d is out of range", page)
	}
	return int64(page-1) * int64(pageSize), nil
}

type ProductListRequest struct {
	Category   string
	PriceOrder PriceOrder
	Page       int
}

func (s *Service) productListQuery(req ProductListRequest) (filter.Query, error) {
	offset, err := skip(req.Page, s.opts.ProductsPageSize)
	if err != nil {
		return filter.Query{}, err
	}

	q := filter.Query{Skip: offset, Limit: int64(s.opts.ProductsPageSize)}
	if req.Category != "" {
		q.Where = append(q.Where, filter.Where{
			Path:  product.CategoryFieldPath,
			Op:    ops.Equal,
			Value: CapitalizeFirst(req.Category),
		})
	}

	switch req.PriceOrder {
	case PriceHighest:
		q.Sort = &filter.Sort{Path: product.PriceFieldPath, Direction: filter.Desc}
	case PriceLowest:
		q.Sort = &filter.Sort{Path: product.PriceFieldPath, Direction: filter.Asc}
	}
	return q, nil
}

func (s *Service) reviewListQuery(page int) (filter.Query, error) {
	offset, err := skip(page, s.opts.ReviewsPageSize)
	if err != nil {
		return filter.Query{}, err
	}
	return filter.Query{Skip: offset, Limit: int64(s.opts.ReviewsPageSize)}, nil
}

func (s *Service) searchQuery(query string) (filter.Query, error) {
	if query == "" {
		return filter.Query{}, ierr.Invalidf("query is required")
	}
	return filter.Query{
		Where: []filter.Where{{Path: product.NameFieldPath, Op: ops.Contains, Value: CapitalizeFirst(query)}},
		Limit: int64(s.opts.SearchLimit),
	}, nil
}
