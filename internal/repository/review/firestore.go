package review

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

func validId(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}

func (r FirestoreRepository) GetById(ctx context.Context, id string) (*model.Review, error) {
	if !validId(id) {
		return nil, ierr.NotFoundf("review %q", id)
	}

	docSnap, err := r.db.GetDoc(ctx, r.db.Collection(reviewNode).Doc(id))
	if err != nil {
		if errors.Is(err, ierr.NotFound) {
			return nil, ierr.NotFoundf("review %s", id)
		}
		return nil, fmt.Errorf("get review: %w, id: %s", err, id)
	}

	doc := document{}
	if err = docSnap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("get review: %w, id: %s", ierr.Store(err), id)
	}

	rw := doc.toModel(docSnap.Ref.ID)
	return &rw, nil
}

func (r FirestoreRepository) Find(ctx context.Context, q filter.Query) ([]model.Review, error) {
	query := r.buildQuery(q)
	if q.Skip > 0 {
		query = query.Offset(int(q.Skip))
	}
	if q.Limit > 0 {
		query = query.Limit(int(q.Limit))
	}

	docs, err := r.db.QueryDocs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	reviews := make([]model.Review, 0, len(docs))
	for _, ds := range docs {
		doc := document{}
		if err := ds.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("find reviews: %w, id: %s", ierr.Store(err), ds.Ref.ID)
		}
		reviews = append(reviews, doc.toModel(ds.Ref.ID))
	}
	return reviews, nil
}

func (r FirestoreRepository) Count(ctx context.Context, q filter.Query) (int64, error) {
	count, err := r.db.CountDocs(ctx, r.buildQuery(filter.Query{Where: q.Where}))
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

func (r FirestoreRepository) Create(ctx context.Context, data *model.Review) error {
	data.CreatedAt = time.Now().UTC()

	docRef := r.db.Collection(reviewNode).NewDoc()
	if _, err := r.db.SetDoc(ctx, docRef, toDocument(*data)); err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	data.Id = docRef.ID
	return nil
}

func (r FirestoreRepository) Delete(ctx context.Context, id string) error {
	if !validId(id) {
		return ierr.NotFoundf("review %q", id)
	}

	if _, err := r.db.DeleteDoc(ctx, r.db.Collection(reviewNode).Doc(id), firestore.Exists); err != nil {
		if errors.Is(err, ierr.NotFound) {
			return ierr.NotFoundf("review %s", id)
		}
		return fmt.Errorf("delete review: %w, id: %s", err, id)
	}
	return nil
}

// buildQuery supports equality filters only; reviews are never searched by substring.
func (r FirestoreRepository) buildQuery(q filter.Query) firestore.Query {
	query := r.db.Collection(reviewNode).Query
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
