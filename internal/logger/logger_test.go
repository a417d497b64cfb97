package logger

import (
	"testing"

	"go-product-reviews/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Setup(config.Log{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup(config.Log{Level: "loud"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
