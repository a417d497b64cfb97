package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/product"

	"github.com/google/uuid"
)

// ProductRepository keeps products in insertion order, which is the native order of Find.
type ProductRepository struct {
	mu       sync.RWMutex
	order    []string
	products map[string]model.Product
}

var _ product.IRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]model.Product)}
}

func (r *ProductRepository) GetById(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ierr.NotFoundf("product %s", id)
	}
	p = cloneProduct(p)
	return &p, nil
}

func (r *ProductRepository) Find(ctx context.Context, q filter.Query) ([]model.Product, error) {
	products, _, err := r.FindAndCount(ctx, q)
	return products, err
}

// FindAndCount filters once and pages the sorted matches.
func (r *ProductRepository) FindAndCount(ctx context.Context, q filter.Query) ([]model.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	result := r.filter(q.Where)
	r.mu.RUnlock()

	if q.Sort != nil {
		sort.SliceStable(result, func(i, j int) bool {
			if q.Sort.Direction == filter.Desc {
				return lessProduct(result[j], result[i], q.Sort.Path)
			}
			return lessProduct(result[i], result[j], q.Sort.Path)
		})
	}

	start, end := q.Page(len(result))
	return result[start:end], int64(len(result)), nil
}

func (r *ProductRepository) Count(ctx context.Context, q filter.Query) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.filter(q.Where))), nil
}

func (r *ProductRepository) Create(ctx context.Context, data *model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data.Id = uuid.NewString()
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	if data.Reviews == nil {
		data.Reviews = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[data.Id] = cloneProduct(*data)
	r.order = append(r.order, data.Id)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ierr.NotFoundf("product %s", id)
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) AddReview(ctx context.Context, id string, reviewId string) error {
	return r.update(id, func(p *model.Product) {
		if !p.HasReview(reviewId) {
			p.Reviews = append(p.Reviews, reviewId)
		}
	})
}

func (r *ProductRepository) RemoveReview(ctx context.Context, id string, reviewId string) error {
	return r.update(id, func(p *model.Product) {
		kept := make([]string, 0, len(p.Reviews))
		for _, rid := range p.Reviews {
			if rid != reviewId {
				kept = append(kept, rid)
			}
		}
		p.Reviews = kept
	})
}

func (r *ProductRepository) update(id string, fn func(p *model.Product)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return ierr.NotFoundf("product %s", id)
	}
	fn(&p)
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	return nil
}

// filter must be called with the lock held.
func (r *ProductRepository) filter(where []filter.Where) []model.Product {
	result := []model.Product{}
	for _, id := range r.order {
		p := r.products[id]
		if matches(p, where, productField) {
			result = append(result, cloneProduct(p))
		}
	}
	return result
}

func productField(p model.Product, path string) (interface{}, bool) {
	switch path {
	case product.CategoryFieldPath:
		return p.Category, true
	case product.NameFieldPath:
		return p.Name, true
	case product.ImageFieldPath:
		return p.Image, true
	}
	return nil, false
}

func lessProduct(a, b model.Product, path string) bool {
	switch path {
	case product.PriceFieldPath:
		return a.Price.LessThan(b.Price)
	case product.NameFieldPath:
		return a.Name < b.Name
	case product.CategoryFieldPath:
		return a.Category < b.Category
	case product.CreatedAtFieldPath:
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return false
}

func cloneProduct(p model.Product) model.Product {
	p.Reviews = append([]string{}, p.Reviews...)
	return p
}
