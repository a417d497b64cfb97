package errors_test

import (
	"errors"
	"fmt"
	"testing"

	ierr "go-product-reviews/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundf(t *testing.T) {
	err := ierr.NotFoundf("product %s", "abc")
	assert.True(t, errors.Is(err, ierr.NotFound))
	assert.Equal(t, "product abc: not found", err.Error())
}

func TestInvalidf(t *testing.T) {
	err := ierr.Invalidf("page must be at least 1, got %d", 0)
	assert.True(t, errors.Is(err, ierr.Invalid))
	assert.False(t, errors.Is(err, ierr.NotFound))
}

func TestStore(t *testing.T) {
	assert.Nil(t, ierr.Store(nil))

	cause := errors.New("connection refused")
	err := fmt.Errorf("get product: %w, id: %s", ierr.Store(cause), "abc")
	assert.True(t, ierr.IsStore(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, ierr.IsStore(ierr.NotFound))
}
