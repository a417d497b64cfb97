package database

import (
	"context"
	"errors"
	"testing"

	ierr "go-product-reviews/internal/errors"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))

	err := mapError(status.Error(codes.NotFound, "no document"))
	assert.True(t, errors.Is(err, ierr.NotFound))

	err = mapError(status.Error(codes.DeadlineExceeded, "deadline exceeded"))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, ierr.IsStore(err))

	err = mapError(status.Error(codes.Canceled, "context canceled"))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, ierr.IsStore(err))

	err = mapError(status.Error(codes.Unavailable, "connection refused"))
	assert.True(t, ierr.IsStore(err))
}
