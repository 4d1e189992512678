// Package handler provides HTTP handlers for the gateway routes.
package handler

import (
	"errors"
	"net/http"

	"bents-gateway/internal/transport/httpdto"
	gateway_errors "bents-gateway/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorKindKey is the gin context key holding the failure class of a request.
const ErrorKindKey = "error_kind"

const (
	ErrorKindStore      = "store"
	ErrorKindDownstream = "downstream"
	ErrorKindInternal   = "internal"
)

// ErrorKind classifies err for logging. Callers always see the same 500.
func ErrorKind(err error) string {
	var storeErr *gateway_errors.StoreError
	var downstreamErr *gateway_errors.DownstreamError
	switch {
	case errors.As(err, &storeErr):
		return ErrorKindStore
	case errors.As(err, &downstreamErr):
		return ErrorKindDownstream
	default:
		return ErrorKindInternal
	}
}

// respondError records err on the context for the error middleware and writes
// the route's generic 500 body.
func respondError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	c.Set(ErrorKindKey, ErrorKind(err))
	c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(message))
}

func respondBadRequest(c *gin.Context, err error, message string) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(message))
}
