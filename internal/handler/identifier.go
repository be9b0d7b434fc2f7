package handler

import (
	"strconv"

	"github.com/eventt-hub/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
)

// ParseID parses a value in the store's native identifier format.
func ParseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, errdef.NewInvalidIdentifier("invalid identifier %q", value)
	}
	return uint(id), nil
}

func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	id, err := ParseID(c.Param(parameter))
	if err != nil {
		_ = c.Error(err)
		return 0, false
	}
	return id, true
}
