package memory

import (
	"strings"

	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"
)

// fieldFunc resolves a field path of a stored item, ok is false for unknown paths.
type fieldFunc[T any] func(item T, path string) (value interface{}, ok bool)

func matches[T any](item T, where []filter.Where, field fieldFunc[T]) bool {
	for _, w := range where {
		v, ok := field(item, w.Path)
		if !ok {
			return false
		}

		switch w.Op {
		case ops.Equal:
			if v != w.Value {
				return false
			}
		case ops.Contains:
			s, _ := v.(string)
			needle, _ := w.Value.(string)
			if !strings.Contains(strings.ToLower(s), strings.ToLower(needle)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
