package product

import (
	"time"

	"go-product-reviews/internal/model"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// document is the stored shape of a product. The price is kept as a number so both stores can sort on it.
type document struct {
	ObjectId  primitive.ObjectID `firestore:"-" bson:"_id,omitempty"`
	Category  string             `firestore:"category" bson:"category"`
	Name      string             `firestore:"name" bson:"name"`
	Price     float64            `firestore:"price" bson:"price"`
	Image     string             `firestore:"image" bson:"image"`
	Reviews   []string           `firestore:"reviews" bson:"reviews"`
	CreatedAt time.Time          `firestore:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `firestore:"updatedAt" bson:"updatedAt"`
}

func toDocument(p model.Product) document {
	reviews := p.Reviews
	if reviews == nil {
		reviews = []string{}
	}
	return document{
		Category:  p.Category,
		Name:      p.Name,
		Price:     p.Price.InexactFloat64(),
		Image:     p.Image,
		Reviews:   reviews,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (d document) toModel(id string) model.Product {
	reviews := d.Reviews
	if reviews == nil {
		reviews = []string{}
	}
	return model.Product{
		Id:        id,
		Category:  d.Category,
		Name:      d.Name,
		Price:     decimal.NewFromFloat(d.Price),
		Image:     d.Image,
		Reviews:   reviews,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
