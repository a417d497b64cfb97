package memory

import (
	"context"
	"sync"
	"time"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/review"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	order   []string
	reviews map[string]model.Review
}

var _ review.IRepository = (*ReviewRepository)(nil)

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]model.Review)}
}

func (r *ReviewRepository) GetById(ctx context.Context, id string) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rw, ok := r.reviews[id]
	if !ok {
		return nil, ierr.NotFoundf("review %s", id)
	}
	return &rw, nil
}

// Find ignores q.Sort, reviews are always returned in insertion order.
func (r *ReviewRepository) Find(ctx context.Context, q filter.Query) ([]model.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := r.filter(q.Where)
	r.mu.RUnlock()

	start, end := q.Page(len(result))
	return result[start:end], nil
}

func (r *ReviewRepository) Count(ctx context.Context, q filter.Query) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.filter(q.Where))), nil
}

func (r *ReviewRepository) Create(ctx context.Context, data *model.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data.Id = uuid.NewString()
	data.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[data.Id] = *data
	r.order = append(r.order, data.Id)
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return ierr.NotFoundf("review %s", id)
	}
	delete(r.reviews, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ReviewRepository) filter(where []filter.Where) []model.Review {
	result := []model.Review{}
	for _, id := range r.order {
		rw := r.reviews[id]
		if matches(rw, where, reviewField) {
			result = append(result, rw)
		}
	}
	return result
}

func reviewField(rw model.Review, path string) (interface{}, bool) {
	switch path {
	case review.UserNameFieldPath:
		return rw.UserName, true
	case review.TextFieldPath:
		return rw.Text, true
	case review.ProductFieldPath:
		return rw.Product, true
	}
	return nil, false
}
