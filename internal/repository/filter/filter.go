package filter

import "go-product-reviews/internal/repository/ops"

type Where struct {
	Path  string
	Op    ops.Op
	Value interface{}
}

type Direction int

const (
	Asc Direction = iota
	Desc
)

type Sort struct {
	Path      string
	Direction Direction
}

// Query is a store independent description of a find request.
// A nil Sort leaves the result in the store's native order, a zero Limit means no limit.
type Query struct {
	Where []Where
	Sort  *Sort
	Skip  int64
	Limit int64
}

// HasOp reports whether any where clause uses op.
func (q Query) HasOp(op ops.Op) bool {
	for _, w := range q.Where {
		if w.Op == op {
			return true
		}
	}
	return false
}

// Page returns the window [Skip, Skip+Limit) of n items clamped to [0, n].
func (q Query) Page(n int) (start, end int) {
	start = int(q.Skip)
	if start > n {
		start = n
	}
	if start < 0 {
		start = 0
	}
	end = n
	if q.Limit > 0 && start+int(q.Limit) < n {
		end = start + int(q.Limit)
	}
	return start, end
}
