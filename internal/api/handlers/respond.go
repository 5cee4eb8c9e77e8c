package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the optional details array on a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondBindError turns a binding failure into the {message, details} shape,
// extracting per-field messages when the underlying error came from the
// validator.
func respondBindError(c *gin.Context, status int, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(c, status, "invalid request body")
		return
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: fieldMessage(fe),
		})
	}
	c.JSON(status, gin.H{"message": "validation failed", "details": details})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
