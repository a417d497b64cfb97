package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-product-reviews/internal/database"
	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"

	"cloud.google.com/go/firestore"
)

type FirestoreRepository struct {
	db database.Client
}

var _ IRepository = FirestoreRepository{}

func NewFirestore(db database.Client) FirestoreRepository {
	return FirestoreRepository{
		db: db,
	}
}

// validId rejects ids firestore would read as a path.
func validId(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}

func (r FirestoreRepository) GetById(ctx context.Context, id string) (*model.Product, error) {
	if !validId(id) {
		return nil, ierr.NotFoundf("product %q", id)
	}

	docSnap, err := r.db.GetDoc(ctx, r.db.Collection(productNode).Doc(id))
	if err != nil {
		if errors.Is(err, ierr.NotFound) {
			return nil, ierr.NotFoundf("product %s", id)
		}
		return nil, fmt.Errorf("get product: %w, id: %s", err, id)
	}

	doc := document{}
	if err = docSnap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("get product: %w, id: %s", ierr.Store(err), id)
	}

	product := doc.toModel(docSnap.Ref.ID)
	return &product, nil
}

// Find pushes equality filters and ordering to firestore. Substring matching is not supported by
// firestore queries, so Contains clauses are applied while iterating and the window is cut afterwards.
func (r FirestoreRepository) Find(ctx context.Context, q filter.Query) ([]model.Product, error) {
	query := r.buildQuery(q)

	if !q.HasOp(ops.Contains) {
		if q.Skip > 0 {
			query = query.Offset(int(q.Skip))
		}
		if q.Limit > 0 {
			query = query.Limit(int(q.Limit))
		}

		docs, err := r.db.QueryDocs(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("find products: %w", err)
		}

		products := make([]model.Product, 0, len(docs))
		for _, ds := range docs {
			doc := document{}
			if err := ds.DataTo(&doc); err != nil {
				return nil, fmt.Errorf("find products: %w, id: %s", ierr.Store(err), ds.Ref.ID)
			}
			products = append(products, doc.toModel(ds.Ref.ID))
		}
		return products, nil
	}

	products, err := r.scan(ctx, query, q.Where)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	page, _ := window(products, q)
	return page, nil
}

func (r FirestoreRepository) Count(ctx context.Context, q filter.Query) (int64, error) {
	query := r.buildQuery(filter.Query{Where: q.Where})

	if !q.HasOp(ops.Contains) {
		count, err := r.db.CountDocs(ctx, query)
		if err != nil {
			return 0, fmt.Errorf("count products: %w", err)
		}
		return count, nil
	}

	products, err := r.scan(ctx, query, q.Where)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return int64(len(products)), nil
}

// FindAndCount scans the collection once when the query needs in-process matching.
func (r FirestoreRepository) FindAndCount(ctx context.Context, q filter.Query) ([]model.Product, int64, error) {
	if !q.HasOp(ops.Contains) {
		products, err := r.Find(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		count, err := r.Count(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return products, count, nil
	}

	products, err := r.scan(ctx, r.buildQuery(q), q.Where)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	page, count := window(products, q)
	return page, count, nil
}

func (r FirestoreRepository) Create(ctx context.Context, data *model.Product) error {
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	if data.Reviews == nil {
		data.Reviews = []string{}
	}

	docRef := r.db.Collection(productNode).NewDoc()
	if _, err := r.db.SetDoc(ctx, docRef, toDocument(*data)); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	data.Id = docRef.ID
	return nil
}

func (r FirestoreRepository) Delete(ctx context.Context, id string) error {
	if !validId(id) {
		return ierr.NotFoundf("product %q", id)
	}

	docRef := r.db.Collection(productNode).Doc(id)
	if _, err := r.db.DeleteDoc(ctx, docRef, firestore.Exists); err != nil {
		if errors.Is(err, ierr.NotFound) {
			return ierr.NotFoundf("product %s", id)
		}
		return fmt.Errorf("delete product: %w, id: %s", err, id)
	}

	return nil
}

func (r FirestoreRepository) AddReview(ctx context.Context, id string, reviewId string) error {
	return r.updateReviews(ctx, id, firestore.ArrayUnion(reviewId))
}

func (r FirestoreRepository) RemoveReview(ctx context.Context, id string, reviewId string) error {
	return r.updateReviews(ctx, id, firestore.ArrayRemove(reviewId))
}

func (r FirestoreRepository) updateReviews(ctx context.Context, id string, value interface{}) error {
	if !validId(id) {
		return ierr.NotFoundf("product %q", id)
	}

	docRef := r.db.Collection(productNode).Doc(id)
	updates := []firestore.Update{
		{Path: ReviewsFieldPath, Value: value},
		{Path: UpdatedAtFieldPath, Value: time.Now().UTC()},
	}

	if _, err := r.db.UpdateDoc(ctx, docRef, updates); err != nil {
		if errors.Is(err, ierr.NotFound) {
			return ierr.NotFoundf("product %s", id)
		}
		return fmt.Errorf("update product reviews: %w, id: %s", err, id)
	}
	return nil
}

func (r FirestoreRepository) buildQuery(q filter.Query) firestore.Query {
	query := r.db.Collection(productNode).Query
	for _, w := range q.Where {
		if w.Op == ops.Equal {
			query = query.Where(w.Path, string(ops.Equal), w.Value)
		}
	}

	if q.Sort != nil {
		dir := firestore.Asc
		if q.Sort.Direction == filter.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.Sort.Path, dir)
	}
	return query
}

func (r FirestoreRepository) scan(ctx context.Context, query firestore.Query, where []filter.Where) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.IterDocs(ctx, query, func(ds *firestore.DocumentSnapshot) error {
		doc := document{}
		if err := ds.DataTo(&doc); err != nil {
			return ierr.Store(err)
		}
		if matchesContains(doc, where) {
			products = append(products, doc.toModel(ds.Ref.ID))
		}
		return nil
	})
	return products, err
}

// window cuts the query's page out of every match and returns it with the match count.
func window(matches []model.Product, q filter.Query) ([]model.Product, int64) {
	start, end := q.Page(len(matches))
	return matches[start:end], int64(len(matches))
}

func matchesContains(doc document, where []filter.Where) bool {
	for _, w := range where {
		if w.Op != ops.Contains {
			continue
		}
		needle, _ := w.Value.(string)
		var field string
		switch w.Path {
		case NameFieldPath:
			field = doc.Name
		case CategoryFieldPath:
			field = doc.Category
		default:
			return false
		}
		if !strings.Contains(strings.ToLower(field), strings.ToLower(needle)) {
			return false
		}
	}
	return true
}
