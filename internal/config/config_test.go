package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cnf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cnf.Server.Port)
	assert.Equal(t, DriverMemory, cnf.Store.Driver)
	assert.Equal(t, 30*time.Second, cnf.Store.Timeout)
	assert.Equal(t, 9, cnf.Catalog.ProductsPageSize)
	assert.Equal(t, 40, cnf.Catalog.ReviewsPageSize)
	assert.Equal(t, 9, cnf.Catalog.SearchLimit)
	assert.Equal(t, 90, cnf.Seeder.Count)
	assert.Equal(t, "product_reviews", cnf.Mongo.DBName)
}

func TestLoadNormalizesDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", " Mongo ")

	cnf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMongo, cnf.Store.Driver)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestLoadFirestoreDecodesPrivateKey(t *testing.T) {
	t.Setenv("STORE_DRIVER", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "demo")
	t.Setenv("FIREBASE_PRIVATE_KEY", base64.StdEncoding.EncodeToString([]byte(`line1\nline2`)))

	cnf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", cnf.Firebase.PrivateKey)
}

func TestLoadFirestoreRequiresCredentials(t *testing.T) {
	t.Setenv("STORE_DRIVER", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("FIREBASE_PRIVATE_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadClampsPageSizes(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PRODUCTS_PAGE_SIZE", "0")
	t.Setenv("SEED_CONCURRENCY", "-3")

	cnf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cnf.Catalog.ProductsPageSize)
	assert.Equal(t, 1, cnf.Seeder.Concurrency)
}
