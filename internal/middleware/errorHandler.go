package middleware

import (
	"fmt"
	"net/http"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// ErrorHandler converts the last error attached to the context into the JSON
// response envelope, mapping the errdef kind to a status code.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if c.Writer.Written() {
			return
		}

		// nolint:gocritic
		if errdef.IsValidation(err) {
			fields, _ := errdef.ValidationFields(err)
			c.JSON(http.StatusBadRequest, errorResponse{Message: "Validation error", Error: fields})
		} else if errdef.IsInvalidIdentifier(err) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid identifier", Error: err.Error()})
		} else if errdef.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		} else if errdef.IsDuplicated(err) {
			c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
		} else if errdef.IsConflict(err) {
			c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
		} else if errdef.IsNotFound(err) {
			c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
		} else {
			id, _ := GetCorrelationID(c.Request.Context())
			message := fmt.Sprintf("Something went wrong. We'll look into it if you send us the id %q", id)
			c.JSON(http.StatusInternalServerError, errorResponse{Message: message, Error: err.Error()})
		}
	}
}
