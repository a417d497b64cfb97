package errors

import (
	"errors"
	"fmt"
)

var (
	// NotFound is returned when an id has no matching record.
	NotFound = errors.New("not found")
	// Invalid is returned when a request misses a required field or carries a malformed value.
	Invalid = errors.New("invalid input")
)

// StoreError wraps a connectivity or write failure reported by the data store.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store marks err as a data store failure. A nil err stays nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), NotFound)
}

func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), Invalid)
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
