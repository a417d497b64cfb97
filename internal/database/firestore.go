package database

import (
	"context"
	"fmt"
	"time"

	ierr "go-product-reviews/internal/errors"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const countAlias = "all"

type FirestoreClient struct {
	*firestore.Client
	writeTimeout time.Duration
}

var _ Client = FirestoreClient{}

func New(client *firestore.Client, writeTimeout time.Duration) FirestoreClient {
	if writeTimeout == 0 {
		writeTimeout = time.Second * 120
	}
	return FirestoreClient{
		Client:       client,
		writeTimeout: writeTimeout,
	}
}

// GetDoc returns ierr.NotFound when the document does not exist.
func (c FirestoreClient) GetDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	docSnapshot, err := docRef.Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	if !docSnapshot.Exists() {
		return nil, ierr.NotFound
	}

	return docSnapshot, nil
}

// IterDocs calls fn for every document of the query until fn returns an error.
func (c FirestoreClient) IterDocs(ctx context.Context, query firestore.Query, fn func(*firestore.DocumentSnapshot) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return mapError(err)
		}

		if err := fn(doc); err != nil {
			return err
		}
	}
}

func (c FirestoreClient) QueryDocs(ctx context.Context, query firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}
	return docs, nil
}

// CountDocs runs a server side count aggregation over the query.
func (c FirestoreClient) CountDocs(ctx context.Context, query firestore.Query) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	res, err := query.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, mapError(err)
	}

	v, ok := res[countAlias].(*firestorepb.Value)
	if !ok {
		return 0, ierr.Store(fmt.Errorf("unexpected count result type %T", res[countAlias]))
	}
	return v.GetIntegerValue(), nil
}

func (c FirestoreClient) UpdateDoc(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (*firestore.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	res, err := docRef.Update(ctx, updates, preconds...)
	return res, mapError(err)
}

func (c FirestoreClient) SetDoc(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	res, err := docRef.Set(ctx, data, opts...)
	return res, mapError(err)
}

func (c FirestoreClient) DeleteDoc(ctx context.Context, docRef *firestore.DocumentRef, preconds ...firestore.Precondition) (*firestore.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	res, err := docRef.Delete(ctx, preconds...)
	return res, mapError(err)
}

// mapError translates grpc status codes into the service's error taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return ierr.NotFound
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	case codes.Canceled:
		return fmt.Errorf("%w: %v", context.Canceled, err)
	}
	return ierr.Store(err)
}
