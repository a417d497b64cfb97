package database

import (
	"context"

	"cloud.google.com/go/firestore"
)

// Client is the subset of firestore operations the repositories rely on.
// Every call is bounded by the client's write timeout.
type Client interface {
	Collection(path string) *firestore.CollectionRef
	GetDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.DocumentSnapshot, error)
	IterDocs(ctx context.Context, query firestore.Query, fn func(*firestore.DocumentSnapshot) error) error
	QueryDocs(ctx context.Context, query firestore.Query) ([]*firestore.DocumentSnapshot, error)
	CountDocs(ctx context.Context, query firestore.Query) (int64, error)
	UpdateDoc(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (*firestore.WriteResult, error)
	SetDoc(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error)
	DeleteDoc(ctx context.Context, docRef *firestore.DocumentRef, preconds ...firestore.Precondition) (*firestore.WriteResult, error)
}
