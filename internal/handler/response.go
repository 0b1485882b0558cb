package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"devops-board/internal/devops"
	"devops-board/internal/domain"
	"devops-board/internal/report"
)

// BadRequest sends a 400 failure document for malformed request parameters.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, report.Failure{Error: true, Message: message})
}

// bindingMessage converts a query binding failure into a message naming the
// query parameter, not the Go field. Only missing-parameter failures are
// rewritten; anything else is reported as-is.
func bindingMessage(req any, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 || verrs[0].Tag() != "required" {
		return err.Error()
	}
	field, ok := reflect.TypeOf(req).FieldByName(verrs[0].StructField())
	if !ok {
		return err.Error()
	}
	return field.Tag.Get("form") + " parameter is required"
}

// Fail sends the failure document for err with a status derived from the
// error taxonomy.
func Fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), report.FromError(err))
}

// statusFor maps service errors onto HTTP status codes. Upstream failures
// surface as 502 so callers can tell them apart from our own errors.
func statusFor(err error) int {
	var apiErr *devops.APIError
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoCurrentIteration):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
