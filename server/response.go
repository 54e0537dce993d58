package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/logger"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// writeError maps err to a status code and writes a JSON error body.
// Hints attached with errors.WithHint are passed through to the client.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.LoggerFromContext(c.Request.Context()).Errorw("Request failed",
			logger.FieldPath, c.Request.URL.Path,
			logger.FieldError, err,
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     err.Error(),
		Hint:      errors.FlattenHints(err),
		RequestID: c.GetString(requestIDKey),
	})
}

// statusFor maps domain sentinels to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.IsInvalidRequestError(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrNoDataset):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// optionalIntQuery parses an integer query parameter; absent means nil
func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.WithHintf(
			errors.WrapInvalidRequest(err, name+" must be an integer"),
			"for example ?%s=2", name,
		)
	}
	return &n, nil
}
