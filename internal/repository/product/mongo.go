package product

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/filter"
	"go-product-reviews/internal/repository/ops"

	"github.com/rs/zerolog/log"
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
	return MongoRepository{collection: db.Collection(productNode)}
}

func (r MongoRepository) GetById(ctx context.Context, id string) (*model.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ierr.NotFoundf("product %q", id)
	}

	doc := document{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ierr.NotFoundf("product %s", id)
		}
		return nil, fmt.Errorf("get product: %w, id: %s", ierr.Store(err), id)
	}

	product := doc.toModel(doc.ObjectId.Hex())
	return &product, nil
}

func (r MongoRepository) Find(ctx context.Context, q filter.Query) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, buildFilter(q.Where), findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", ierr.Store(err))
	}
	defer cursor.Close(ctx)

	var docs []document
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", ierr.Store(err))
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toModel(doc.ObjectId.Hex()))
	}
	return products, nil
}

func (r MongoRepository) Count(ctx context.Context, q filter.Query) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, buildFilter(q.Where))
	if err != nil {
		return 0, fmt.Errorf("count products: %w", ierr.Store(err))
	}
	return count, nil
}

func (r MongoRepository) FindAndCount(ctx context.Context, q filter.Query) ([]model.Product, int64, error) {
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

func (r MongoRepository) Create(ctx context.Context, data *model.Product) error {
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	if data.Reviews == nil {
		data.Reviews = []string{}
	}

	result, err := r.collection.InsertOne(ctx, toDocument(*data))
	if err != nil {
		return fmt.Errorf("create product: %w", ierr.Store(err))
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.Id = oid.Hex()
	}
	log.Debug().Msgf("inserted product %s", data.Id)
	return nil
}

func (r MongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ierr.NotFoundf("product %q", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete product: %w, id: %s", ierr.Store(err), id)
	}
	if result.DeletedCount == 0 {
		return ierr.NotFoundf("product %s", id)
	}
	return nil
}

func (r MongoRepository) AddReview(ctx context.Context, id string, reviewId string) error {
	return r.updateReviews(ctx, id, bson.M{"$addToSet": bson.M{ReviewsFieldPath: reviewId}})
}

func (r MongoRepository) RemoveReview(ctx context.Context, id string, reviewId string) error {
	return r.updateReviews(ctx, id, bson.M{"$pull": bson.M{ReviewsFieldPath: reviewId}})
}

func (r MongoRepository) updateReviews(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ierr.NotFoundf("product %q", id)
	}

	update["$set"] = bson.M{UpdatedAtFieldPath: time.Now().UTC()}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("update product reviews: %w, id: %s", ierr.Store(err), id)
	}
	if result.MatchedCount == 0 {
		return ierr.NotFoundf("product %s", id)
	}
	return nil
}

// buildFilter translates where clauses into a mongo filter. Contains becomes an escaped,
// case-insensitive regular expression.
func buildFilter(where []filter.Where) bson.M {
	f := bson.M{}
	for _, w := range where {
		switch w.Op {
		case ops.Equal:
			f[w.Path] = w.Value
		case ops.Contains:
			f[w.Path] = primitive.Regex{Pattern: regexp.QuoteMeta(fmt.Sprint(w.Value)), Options: "i"}
		}
	}
	return f
}

func findOptions(q filter.Query) *options.FindOptions {
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
	return opts
}
