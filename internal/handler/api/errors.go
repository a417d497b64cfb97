package api

import (
	"context"
	"errors"
	"net/http"

	ierr "go-product-reviews/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// statusOf maps the error taxonomy to an http status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ierr.Invalid):
		return http.StatusBadRequest
	case errors.Is(err, ierr.NotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error, requestInfo string) {
	code := statusOf(err)
	msg := err.Error()

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("request", requestInfo).Str("requestId", requestID(c)).Msg("request failed")
		if ierr.IsStore(err) {
			msg = "data store failure"
		}
	} else {
		log.Debug().Err(err).Str("request", requestInfo).Int("status", code).Msg("request rejected")
	}

	c.JSON(code, gin.H{"error": msg})
}
