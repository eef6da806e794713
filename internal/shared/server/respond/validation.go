package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError reports a single failed field constraint.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validation maps a binding error to a 422 response. Field constraint
// violations carry per-field details; anything else (malformed JSON, wrong
// types) gets a bare validation_error.
func Validation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		Error(c, http.StatusUnprocessableEntity, "validation_error", "request validation failed", details)
		return
	}
	Error(c, http.StatusUnprocessableEntity, "validation_error", "invalid request body", nil)
}
