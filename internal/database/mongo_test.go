package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoConfigURI(t *testing.T) {
	tests := []struct {
		name string
		cfg  MongoConfig
		want string
	}{
		{"explicit uri wins", MongoConfig{URI: "mongodb+srv://cluster", Host: "ignored"}, "mongodb+srv://cluster"},
		{"with credentials", MongoConfig{Host: "db", Port: "27017", User: "u", Password: "p"}, "mongodb://u:p@db:27017"},
		{"user without password", MongoConfig{Host: "db", Port: "27017", User: "u"}, "mongodb://db:27017"},
		{"anonymous", MongoConfig{Host: "localhost", Port: "27018"}, "mongodb://localhost:27018"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.uri())
		})
	}
}

func TestMongoClientOptionsTimeout(t *testing.T) {
	opts := MongoConfig{Host: "db", Port: "27017", Timeout: 15 * time.Second, OpTimeout: 30 * time.Second}.clientOptions()
	require.NotNil(t, opts.Timeout)
	assert.Equal(t, 30*time.Second, *opts.Timeout)

	opts = MongoConfig{Host: "db", Port: "27017", Timeout: 15 * time.Second}.clientOptions()
	require.NotNil(t, opts.Timeout)
	assert.Equal(t, 15*time.Second, *opts.Timeout)

	opts = MongoConfig{Host: "db", Port: "27017"}.clientOptions()
	assert.Nil(t, opts.Timeout)
}
