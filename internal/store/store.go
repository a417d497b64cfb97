package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-product-reviews/internal/config"
	"go-product-reviews/internal/database"
	"go-product-reviews/internal/repository/memory"
	"go-product-reviews/internal/repository/product"
	"go-product-reviews/internal/repository/review"

	Firestore "firebase.google.com/go/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type Repositories struct {
	Products product.IRepository
	Reviews  review.IRepository
	close    func() error
}

// Close releases the underlying client.
func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Open connects to the store selected by cnf.Store.Driver.
func Open(ctx context.Context, cnf config.Config) (Repositories, error) {
	switch cnf.Store.Driver {
	case config.DriverFirestore:
		return openFirestore(ctx, cnf)
	case config.DriverMongo:
		return openMongo(ctx, cnf)
	case config.DriverMemory:
		log.Warn().Msg("using the in-memory store, data is lost on exit")
		return Repositories{
			Products: memory.NewProductRepository(),
			Reviews:  memory.NewReviewRepository(),
		}, nil
	}
	return Repositories{}, fmt.Errorf("store: unknown driver %q", cnf.Store.Driver)
}

func openFirestore(ctx context.Context, cnf config.Config) (Repositories, error) {
	creds, err := json.Marshal(cnf.Firebase)
	if err != nil {
		return Repositories{}, err
	}

	app, err := Firestore.NewApp(ctx, nil, option.WithCredentialsJSON(creds))
	if err != nil {
		return Repositories{}, fmt.Errorf("create firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return Repositories{}, fmt.Errorf("create firestore client: %w", err)
	}

	db := database.New(client, cnf.Store.Timeout)
	return Repositories{
		Products: product.NewFirestore(db),
		Reviews:  review.NewFirestore(db),
		close:    client.Close,
	}, nil
}

func openMongo(ctx context.Context, cnf config.Config) (Repositories, error) {
	client, err := database.NewMongoConnection(ctx, mongoConfig(cnf))
	if err != nil {
		return Repositories{}, err
	}

	db := client.Database(cnf.Mongo.DBName)
	return Repositories{
		Products: product.NewMongo(db),
		Reviews:  review.NewMongo(db),
		close: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		},
	}, nil
}

// mongoConfig applies STORE_TIMEOUT to every mongo operation, MONGO_TIMEOUT only covers connecting.
func mongoConfig(cnf config.Config) database.MongoConfig {
	return database.MongoConfig{
		URI:       cnf.Mongo.URI,
		Host:      cnf.Mongo.Host,
		Port:      cnf.Mongo.Port,
		User:      cnf.Mongo.User,
		Password:  cnf.Mongo.Password,
		DBName:    cnf.Mongo.DBName,
		Timeout:   cnf.Mongo.Timeout,
		OpTimeout: cnf.Store.Timeout,
	}
}
