package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	collection *mongo.Collection
}

var _ IRepository = MongoRepository{}

func NewMongo(db *mongo.Database) MongoRepository {
	return MongoRepository{collection: db.Collection(reviewNode)}
}

func (r MongoRepository) GetById(ctx context.Context, id string) (*model.Review, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ierr.NotFoundf("review %q", id)
	}

	doc := document{}
	if err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ierr.NotFoundf("review %s", id)
		}
		return nil, fmt.Errorf("get review: %w, id: %s", ierr.Store(err), id)
	}

	rw := doc.toModel(doc.ObjectId.Hex())
	return &rw, nil
}

func (r MongoRepository) Find(ctx context.Context, q filter.Query) ([]model.Review, error) {
	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Sort != nil {
		dir := 1
		if q.Sort.Direction == filter.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.Sort.Path, Value: dir}})
	}

	cursor, err := r.collection.Find(ctx, buildFilter(q.Where), opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", ierr.Store(err))
	}
	defer cursor.Close(ctx)

	var docs []document
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", ierr.Store(err))
	}

	reviews := make([]model.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, doc.toModel(doc.ObjectId.Hex()))
	}
	return reviews, nil
}

func (r MongoRepository) Count(ctx context.Context, q filter.Query) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, buildFilter(q.Where))
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", ierr.Store(err))
	}
	return count, nil
}

func (r MongoRepository) Create(ctx context.Context, data *model.Review) error {
	data.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, toDocument(*data))
	if err != nil {
		return fmt.Errorf("create review: %w", ierr.Store(err))
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.Id = oid.Hex()
	}
	return nil
}

func (r MongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ierr.NotFoundf("review %q", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete review: %w, id: %s", ierr.Store(err), id)
	}
	if result.DeletedCount == 0 {
		return ierr.NotFoundf("review %s", id)
	}
	return nil
}

func buildFilter(where []filter.Where) bson.M {
	f := bson.M{}
	for _, w := range where {
		if w.Op == ops.Equal {
			f[w.Path] = w.Value
		}
	}
	return f
}
