package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps the service error taxonomy onto the response envelope. Every
// handler recovers here; nothing crosses the request boundary.
func fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.FieldError(c, verr.Field, verr.Message)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "object not found")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "conflict")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.FieldError(c, "id", "a valid integer is required")
		return 0, false
	}
	return uint(id), true
}
