package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/pkg/response"
)

var (
	errWrongQuery = errors.New("invalid query parameters")
	errWrongBody  = errors.New("invalid request body")
	errMissingID  = errors.New("missing record id")
)

// mapError translates domain errors into HTTP responses.
func (h handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, crm.ErrUnknownEntitySet),
		errors.Is(err, crm.ErrRecordNotFound):
		response.NotFound(c, err)
	case errors.Is(err, crm.ErrEmptyPayload),
		errors.Is(err, errWrongQuery),
		errors.Is(err, errWrongBody),
		errors.Is(err, errMissingID):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
