package handler

import (
	"errors"
	"fmt"

	"github.com/eventt-hub/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func DataBinder(c *gin.Context, req interface{}) error {
	if c.ContentType() != "application/json" {
		reason := fmt.Sprintf("%s only accepts content of type application/json", c.FullPath())
		return errdef.NewBadRequest("%s", reason)
	}

	if err := c.ShouldBind(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errdef.NewValidation(fieldMessages(validationErrors))
		}
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}

func fieldMessages(validationErrors validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = fieldMessage(fieldError)
	}
	return fields
}

func fieldMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "dateparseable":
		return fmt.Sprintf("%s is not a valid date", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fieldError.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
