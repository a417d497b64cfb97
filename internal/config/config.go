package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
)

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"
)

type Server struct {
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Store struct {
	Driver  string        `env:"STORE_DRIVER" envDefault:"mongo"`
	Timeout time.Duration `env:"STORE_TIMEOUT" envDefault:"30s"`
}

// Firebase holds the service account credentials. It is marshaled as-is into the credentials JSON,
// so the json tags follow the service account file format.
type Firebase struct {
	Type                    string `env:"FIREBASE_TYPE" json:"type"`
	ProjectId               string `env:"FIREBASE_PROJECT_ID" json:"project_id"`
	PrivateKeyId            string `env:"FIREBASE_PRIVATE_KEY_ID" json:"private_key_id"`
	PrivateKey              string `env:"FIREBASE_PRIVATE_KEY" json:"private_key"`
	ClientEmail             string `env:"FIREBASE_CLIENT_EMAIL" json:"client_email"`
	ClientId                string `env:"FIREBASE_CLIENT_ID" json:"client_id"`
	AuthUri                 string `env:"FIREBASE_AUTH_URI" json:"auth_uri"`
	TokenUri                string `env:"FIREBASE_TOKEN_URI" json:"token_uri"`
	AuthProviderX509CertUrl string `env:"FIREBASE_AUTH_PROVIDER_X509_CERT_URL" json:"auth_provider_x509_cert_url"`
	ClientX509CertUrl       string `env:"FIREBASE_CLIENT_X509_CERT_URL" json:"client_x509_cert_url"`
}

type Mongo struct {
	URI      string        `env:"MONGO_URI"`
	Host     string        `env:"MONGO_HOST" envDefault:"localhost"`
	Port     string        `env:"MONGO_PORT" envDefault:"27017"`
	User     string        `env:"MONGO_USER"`
	Password string        `env:"MONGO_PASSWORD"`
	DBName   string        `env:"MONGO_DBNAME" envDefault:"product_reviews"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT" envDefault:"15s"`
}

type Catalog struct {
	ProductsPageSize int `env:"PRODUCTS_PAGE_SIZE" envDefault:"9"`
	ReviewsPageSize  int `env:"REVIEWS_PAGE_SIZE" envDefault:"40"`
	SearchLimit      int `env:"SEARCH_LIMIT" envDefault:"9"`
}

type Seeder struct {
	Count       int `env:"SEED_COUNT" envDefault:"90"`
	Concurrency int `env:"SEED_CONCURRENCY" envDefault:"10"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

type Config struct {
	Server
	Store
	Firebase
	Mongo
	Catalog
	Seeder
	Log
}

func LoadConfigOrPanic() Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}
	return config
}

func Load() (Config, error) {
	var config *Config = new(Config)
	if err := env.Parse(config); err != nil {
		return Config{}, err
	}

	if err := config.normalize(); err != nil {
		return Config{}, err
	}
	return *config, nil
}

func (c *Config) normalize() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	switch c.Store.Driver {
	case DriverFirestore:
		if c.Firebase.ProjectId == "" || c.Firebase.PrivateKey == "" {
			return fmt.Errorf("config: firestore driver requires FIREBASE_PROJECT_ID and FIREBASE_PRIVATE_KEY")
		}
		decodedBytes, err := base64.StdEncoding.DecodeString(c.Firebase.PrivateKey)
		if err != nil {
			return fmt.Errorf("config: decode FIREBASE_PRIVATE_KEY: %w", err)
		}
		c.Firebase.PrivateKey = strings.ReplaceAll(string(decodedBytes), "\\n", "\n")
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Store.Timeout == 0 {
		c.Store.Timeout = time.Second * 30
	}

	if c.Catalog.ProductsPageSize <= 0 {
		c.Catalog.ProductsPageSize = 9
	}
	if c.Catalog.ReviewsPageSize <= 0 {
		c.Catalog.ReviewsPageSize = 40
	}
	if c.Catalog.SearchLimit <= 0 {
		c.Catalog.SearchLimit = 9
	}
	if c.Seeder.Concurrency <= 0 {
		c.Seeder.Concurrency = 1
	}

	return nil
}
