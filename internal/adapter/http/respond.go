package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// mapErrorToStatus translates service errors into HTTP status codes.
// Services wrap repository errors, so matching goes through errors.Is.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, interfaces.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingUser),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidItem),
		errors.Is(err, domain.ErrBadStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
}
