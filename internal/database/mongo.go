package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConfig struct {
	URI       string
	Host      string
	Port      string
	User      string
	Password  string
	DBName    string
	// Timeout bounds connecting and the initial ping.
	Timeout   time.Duration
	// OpTimeout bounds every operation on the returned client. Zero falls back to Timeout.
	OpTimeout time.Duration
}

func (cfg MongoConfig) uri() string {
	if cfg.URI != "" {
		return cfg.URI
	}
	if cfg.User != "" && cfg.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
}

func (cfg MongoConfig) clientOptions() *options.ClientOptions {
	opTimeout := cfg.OpTimeout
	if opTimeout == 0 {
		opTimeout = cfg.Timeout
	}
	opts := options.Client().ApplyURI(cfg.uri())
	if opTimeout > 0 {
		opts.SetTimeout(opTimeout)
	}
	return opts
}

// NewMongoConnection connects and pings the primary before returning the client.
func NewMongoConnection(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	connectionTimeout := cfg.Timeout
	if connectionTimeout == 0 {
		connectionTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	log.Info().Str("host", cfg.Host).Str("db", cfg.DBName).Msg("connecting to mongodb")

	client, err := mongo.Connect(ctx, cfg.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}
