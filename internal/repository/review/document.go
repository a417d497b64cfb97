package review

import (
	"time"

	"go-product-reviews/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type document struct {
	ObjectId  primitive.ObjectID `firestore:"-" bson:"_id,omitempty"`
	UserName  string             `firestore:"userName" bson:"userName"`
	Text      string             `firestore:"text" bson:"text"`
	Product   string             `firestore:"product" bson:"product"`
	CreatedAt time.Time          `firestore:"createdAt" bson:"createdAt"`
}

func toDocument(r model.Review) document {
	return document{
		UserName:  r.UserName,
		Text:      r.Text,
		Product:   r.Product,
		CreatedAt: r.CreatedAt,
	}
}

func (d document) toModel(id string) model.Review {
	return model.Review{
		Id:        id,
		UserName:  d.UserName,
		Text:      d.Text,
		Product:   d.Product,
		CreatedAt: d.CreatedAt,
	}
}
