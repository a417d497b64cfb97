package logger

import (
	"os"
	"time"

	"go-product-reviews/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. An unknown level falls back to info.
func Setup(cnf config.Log) {
	level, err := zerolog.ParseLevel(cnf.Level)
	if err != nil || cnf.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cnf.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
